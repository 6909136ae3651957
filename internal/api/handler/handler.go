package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smzdh/smzdh/internal/service"
	"github.com/smzdh/smzdh/internal/session"
)

// Handler 聚合各业务服务，供路由注册
type Handler struct {
	userSvc    service.UserService
	postSvc    service.PostService
	commentSvc service.CommentService
	sessions   *session.Store
	log        *zap.Logger
}

func New(userSvc service.UserService, postSvc service.PostService,
	commentSvc service.CommentService, sessions *session.Store, log *zap.Logger) *Handler {
	return &Handler{
		userSvc:    userSvc,
		postSvc:    postSvc,
		commentSvc: commentSvc,
		sessions:   sessions,
		log:        log,
	}
}

// currentUser 当前登录用户 id，由鉴权中间件注入
func currentUser(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
