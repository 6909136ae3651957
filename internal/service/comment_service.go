package service

import (
	"context"

	"github.com/smzdh/smzdh/internal/model"
	"github.com/smzdh/smzdh/internal/repository"
)

// CommentService 评论的写入与按帖分页读取
type CommentService interface {
	Add(ctx context.Context, content string, author, postID int64) error
	ListByPost(ctx context.Context, postID int64, skip, limit int) ([]*model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

// Add 先确认帖子存在，避免评论挂到不存在的帖子上
func (s *commentService) Add(ctx context.Context, content string, author, postID int64) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	_, err = s.comments.Create(ctx, content, author, postID)
	return err
}

func (s *commentService) ListByPost(ctx context.Context, postID int64, skip, limit int) ([]*model.Comment, error) {
	return s.comments.ListByPost(ctx, postID, skip, limit)
}
