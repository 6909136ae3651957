package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/smzdh/smzdh/internal/session"
	"github.com/smzdh/smzdh/pkg/response"
)

// TokenHeader 客户端携带会话令牌的请求头
const TokenHeader = "X-Session-Token"

// Auth 解析会话令牌并把 user_id 注入请求上下文
func Auth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Unauthorized(c, "missing session token")
			c.Abort()
			return
		}
		uid, err := sessions.Resolve(c.Request.Context(), token)
		if errors.Is(err, session.ErrNotFound) {
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}
		if err != nil {
			response.InternalError(c, err)
			c.Abort()
			return
		}
		c.Set("user_id", uid)
		c.Next()
	}
}
