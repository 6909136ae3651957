package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smzdh/smzdh/config"
	"github.com/smzdh/smzdh/internal/api/handler"
	"github.com/smzdh/smzdh/internal/api/middleware"
	"github.com/smzdh/smzdh/internal/model"
	"github.com/smzdh/smzdh/internal/repository"
	"github.com/smzdh/smzdh/internal/service"
	"github.com/smzdh/smzdh/internal/session"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	sessions := session.NewStore(client, time.Hour)

	h := handler.New(
		service.NewUserService(userRepo, sessions),
		service.NewPostService(postRepo),
		service.NewCommentService(commentRepo, postRepo),
		sessions,
		zap.NewNop(),
	)
	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Server.RateLimit = 1000
	cfg.Server.RateBurst = 1000
	return NewRouter(cfg, h, sessions)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestAPIEndToEnd(t *testing.T) {
	r := setupRouter(t)

	// 注册
	w, out := doJSON(t, r, http.MethodPost, "/api/v1/users/register", "",
		gin.H{"username": "alice", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, float64(0), out["code"])
	assert.Nil(t, out["error"])

	// 重复注册：唯一约束冲突
	w, out = doJSON(t, r, http.MethodPost, "/api/v1/users/register", "",
		gin.H{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(20001), out["code"])
	assert.NotNil(t, out["error"])

	// 登录拿令牌；返回的用户线上形态不带 password/salt
	w, out = doJSON(t, r, http.MethodPost, "/api/v1/users/login", "",
		gin.H{"username": "alice", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)
	result := out["result"].(map[string]any)
	assert.Equal(t, "alice", result["username"])
	assert.NotContains(t, result, "password")
	assert.NotContains(t, result, "salt")

	// 未登录不能发帖
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts", "",
		gin.H{"title": "Hello", "content": "World"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 发帖
	w, out = doJSON(t, r, http.MethodPost, "/api/v1/posts", token,
		gin.H{"title": "Hello", "content": "World"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["code"])

	// 列表：精简形态，无 content
	w, out = doJSON(t, r, http.MethodGet, "/api/v1/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := out["result"].([]any)
	require.Len(t, list, 1)
	summary := list[0].(map[string]any)
	assert.Equal(t, "Hello", summary["title"])
	assert.NotContains(t, summary, "content")
	postID := int64(summary["id"].(float64))

	// 单帖：完整形态
	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	full := out["result"].(map[string]any)
	assert.Equal(t, "Hello", full["title"])
	assert.Equal(t, "World", full["content"])

	// 评论
	w, out = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", postID), token,
		gin.H{"content": "Nice post!"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["code"])

	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/comments", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := out["result"].([]any)
	require.Len(t, comments, 1)
	cm := comments[0].(map[string]any)
	assert.Equal(t, "Nice post!", cm["content"])
	assert.Equal(t, float64(postID), cm["post_id"])

	// 注销后令牌失效
	w, out = doJSON(t, r, http.MethodPost, "/api/v1/users/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["code"])
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts", token,
		gin.H{"title": "again", "content": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIPostNotFound(t *testing.T) {
	r := setupRouter(t)
	w, out := doJSON(t, r, http.MethodGet, "/api/v1/posts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(30001), out["code"])
	assert.NotNil(t, out["error"])
}

func TestAPIBadPagination(t *testing.T) {
	r := setupRouter(t)
	// 缺省分页参数等价于 skip=0&limit=20
	w1, out1 := doJSON(t, r, http.MethodGet, "/api/v1/posts", "", nil)
	w2, out2 := doJSON(t, r, http.MethodGet, "/api/v1/posts?skip=0&limit=20", "", nil)
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, out1["result"], out2["result"])
}
