package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smzdh/smzdh/internal/api/middleware"
	"github.com/smzdh/smzdh/internal/service"
	"github.com/smzdh/smzdh/pkg/response"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 用户注册
// @Summary 注册新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		response.Fail(c, http.StatusBadRequest, response.CodeUserExists, err.Error())
		return
	}
	if err != nil {
		h.log.Error("register failed", zap.String("username", req.Username), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// Login 用户登录，签发会话令牌
// @Summary 登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.userSvc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.Fail(c, http.StatusBadRequest, response.CodeUserNotFound, err.Error())
		return
	case errors.Is(err, service.ErrWrongPassword):
		response.Fail(c, http.StatusBadRequest, response.CodeWrongPassword, err.Error())
		return
	case err != nil:
		h.log.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	e := response.NewWith(response.CodeOK, "", u.Wire())
	e.Insert("token", token)
	response.Write(c, http.StatusOK, e)
}

// Logout 注销当前会话令牌
// @Summary 退出登录
// @Tags 用户
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/v1/users/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.TokenHeader)
	if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}
