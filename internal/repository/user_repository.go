package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smzdh/smzdh/internal/model"
	"github.com/smzdh/smzdh/pkg/secure"
)

// EncryptFunc 口令散列协作方：encrypt(plain) -> (hash, salt)
type EncryptFunc func(plain string) (hash, salt string, err error)

type UserRepository interface {
	Create(ctx context.Context, username, plainPassword string) (int64, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	db      *gorm.DB
	encrypt EncryptFunc
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, encrypt: secure.Encrypt}
}

// NewUserRepositoryWithEncrypt 注入散列实现，测试用
func NewUserRepositoryWithEncrypt(db *gorm.DB, encrypt EncryptFunc) UserRepository {
	return &userRepository{db: db, encrypt: encrypt}
}

// Create 先散列再插入；不做预查询，唯一性由库约束在插入时保证，
// 冲突表现为 gorm.ErrDuplicatedKey。created 由存储侧赋值
func (r *userRepository) Create(ctx context.Context, username, plainPassword string) (int64, error) {
	hash, salt, err := r.encrypt(plainPassword)
	if err != nil {
		return 0, err
	}
	u := &model.User{Username: username, Password: hash, Salt: salt}
	tx := r.db.WithContext(ctx).Create(u)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// FindByUsername 按用户名精确查找；无记录返回 nil, nil，不视为错误
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
