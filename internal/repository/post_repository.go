package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smzdh/smzdh/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, title, content string, author int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, skip, limit int) ([]*model.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, title, content string, author int64) (int64, error) {
	p := &model.Post{Title: title, Content: content, Author: author}
	tx := r.db.WithContext(ctx).Create(p)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// GetByID 主键精确查找；无记录返回 nil, nil
func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List 分页列表，skip 缺省 0、limit 缺省 20；
// 显式按 id 升序，保证翻页稳定；skip 超出总量返回空切片而非错误
func (r *postRepository) List(ctx context.Context, skip, limit int) ([]*model.Post, error) {
	skip, limit = normalizePage(skip, limit)
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
