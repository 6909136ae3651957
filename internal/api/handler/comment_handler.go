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

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment 发表评论（需登录）
// @Summary 给帖子添加评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path int true "帖子ID"
// @Param request body createCommentRequest true "评论内容"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/v1/posts/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err = h.commentSvc.Add(c.Request.Context(), req.Content, currentUser(c), postID)
	if errors.Is(err, service.ErrPostNotFound) {
		response.Fail(c, http.StatusNotFound, response.CodePostNotFound, err.Error())
		return
	}
	if err != nil {
		h.log.Error("create comment failed", zap.Int64("post_id", postID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListComments 帖子下评论分页列表
// @Summary 按帖子查评论
// @Tags 评论
// @Param id path int true "帖子ID"
// @Param skip query int false "跳过条数" default(0)
// @Param limit query int false "每页条数" default(20)
// @Success 200 {object} response.Envelope
// @Router /api/v1/posts/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	comments, err := h.commentSvc.ListByPost(c.Request.Context(), postID, skip, limit)
	if err != nil {
		h.log.Error("list comments failed", zap.Int64("post_id", postID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	list := make([]map[string]any, len(comments))
	for i, cm := range comments {
		list[i] = cm.Wire()
	}
	response.Success(c, list)
}
