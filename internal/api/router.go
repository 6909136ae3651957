package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/smzdh/smzdh/config"
	"github.com/smzdh/smzdh/internal/api/handler"
	"github.com/smzdh/smzdh/internal/api/middleware"
	"github.com/smzdh/smzdh/internal/session"
)

// NewRouter 组装全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, sessions *session.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("smzdh"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/logout", middleware.Auth(sessions), h.Logout)

		posts := v1.Group("/posts")
		posts.GET("", h.ListPosts)
		posts.GET("/:id", h.GetPost)
		posts.GET("/:id/comments", h.ListComments)

		// 写操作需登录
		authed := posts.Group("", middleware.Auth(sessions))
		authed.POST("", h.CreatePost)
		authed.POST("/:id/comments", h.CreateComment)
	}
	return r
}
