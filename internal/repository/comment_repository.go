package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/smzdh/smzdh/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, content string, author, postID int64) (int64, error)
	ListByPost(ctx context.Context, postID int64, skip, limit int) ([]*model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, content string, author, postID int64) (int64, error) {
	c := &model.Comment{Content: content, Author: author, PostID: postID}
	tx := r.db.WithContext(ctx).Create(c)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// ListByPost 按 post_id 等值过滤的分页列表，缺省值与帖子列表一致
func (r *commentRepository) ListByPost(ctx context.Context, postID int64, skip, limit int) ([]*model.Comment, error) {
	skip, limit = normalizePage(skip, limit)
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
