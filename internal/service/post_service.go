package service

import (
	"context"
	"errors"

	"github.com/smzdh/smzdh/internal/model"
	"github.com/smzdh/smzdh/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

// PostService 发帖与读帖
type PostService interface {
	Publish(ctx context.Context, title, content string, author int64) error
	Get(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, skip, limit int) ([]*model.Post, error)
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Publish(ctx context.Context, title, content string, author int64) error {
	_, err := s.posts.Create(ctx, title, content, author)
	return err
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (s *postService) List(ctx context.Context, skip, limit int) ([]*model.Post, error) {
	return s.posts.List(ctx, skip, limit)
}
