package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smzdh/smzdh/internal/model"
	"github.com/smzdh/smzdh/internal/repository"
	"github.com/smzdh/smzdh/internal/session"
	"github.com/smzdh/smzdh/pkg/secure"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// UserService 注册与登录
type UserService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, *model.User, error)
}

type userService struct {
	users    repository.UserRepository
	sessions *session.Store
}

func NewUserService(users repository.UserRepository, sessions *session.Store) UserService {
	return &userService{users: users, sessions: sessions}
}

func (s *userService) Register(ctx context.Context, username, password string) error {
	_, err := s.users.Create(ctx, username, password)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return err
}

// Login 校验口令并签发会话令牌
func (s *userService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrUserNotFound
	}
	if !secure.Verify(password, u.Salt, u.Password) {
		return "", nil, ErrWrongPassword
	}
	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
