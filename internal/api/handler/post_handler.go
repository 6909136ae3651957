package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smzdh/smzdh/internal/service"
	"github.com/smzdh/smzdh/pkg/response"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// CreatePost 发帖（需登录）
// @Summary 新建帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.postSvc.Publish(c.Request.Context(), req.Title, req.Content, currentUser(c)); err != nil {
		h.log.Error("create post failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPost 读单帖（完整形态）
// @Summary 按 id 查帖子
// @Tags 帖子
// @Param id path int true "帖子ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/v1/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	p, err := h.postSvc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrPostNotFound) {
		response.Fail(c, http.StatusNotFound, response.CodePostNotFound, err.Error())
		return
	}
	if err != nil {
		h.log.Error("get post failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, p.Wire())
}

// ListPosts 帖子分页列表（精简形态）
// @Summary 帖子列表
// @Tags 帖子
// @Param skip query int false "跳过条数" default(0)
// @Param limit query int false "每页条数" default(20)
// @Success 200 {object} response.Envelope
// @Router /api/v1/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	posts, err := h.postSvc.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error("list posts failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	list := make([]map[string]any, len(posts))
	for i, p := range posts {
		list[i] = p.Summary()
	}
	response.Success(c, list)
}
