package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentType 统一响应类型；传输层状态码与信封内 code 互相独立
const ContentType = "application/json; charset=utf-8"

// 应用层错误码：0 成功，1xxxx 通用，2xxxx 用户，3xxxx 帖子/评论
const (
	CodeOK            = 0
	CodeInternalError = 10001
	CodeBadRequest    = 10002
	CodeUnauthorized  = 10003
	CodeUserExists    = 20001
	CodeUserNotFound  = 20002
	CodeWrongPassword = 20003
	CodePostNotFound  = 30001
)

// Envelope 统一 JSON 信封：{code, error, result, ...}
// key 有序（序列化按字典序），同 key 覆盖写入并返回旧值
type Envelope struct {
	data map[string]any
}

func New() *Envelope {
	return &Envelope{data: make(map[string]any)}
}

// NewWith 一次性填入三个标准 key
func NewWith(code int, errMsg string, result any) *Envelope {
	e := New()
	e.SetCode(code)
	e.SetError(errMsg)
	e.SetResult(result)
	return e
}

func (e *Envelope) SetCode(code int) (prev any, existed bool) {
	return e.Insert("code", code)
}

// SetError 空字符串规整为 null，客户端以 error == null 判定成功
func (e *Envelope) SetError(msg string) (prev any, existed bool) {
	if msg == "" {
		return e.Insert("error", nil)
	}
	return e.Insert("error", msg)
}

func (e *Envelope) SetResult(result any) (prev any, existed bool) {
	return e.Insert("result", result)
}

func (e *Envelope) Insert(key string, value any) (prev any, existed bool) {
	prev, existed = e.data[key]
	e.data[key] = value
	return prev, existed
}

func (e *Envelope) Get(key string) (any, bool) {
	v, ok := e.data[key]
	return v, ok
}

func (e *Envelope) Serialize() ([]byte, error) {
	return json.Marshal(e.data)
}

func (e *Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.data)
}

// Write 序列化信封并按固定 Content-Type 写出
func Write(c *gin.Context, status int, e *Envelope) {
	body, err := e.Serialize()
	if err != nil {
		// 本系统的 result 均为 JSON 可表示值，理论上走不到这里
		c.Data(http.StatusInternalServerError, ContentType,
			[]byte(`{"code":10001,"error":"serialize response failed"}`))
		return
	}
	c.Data(status, ContentType, body)
}

func Success(c *gin.Context, result any) {
	Write(c, http.StatusOK, NewWith(CodeOK, "", result))
}

// Fail 失败信封：非零 code、非空 error、不带 result
func Fail(c *gin.Context, status, code int, msg string) {
	e := New()
	e.SetCode(code)
	e.SetError(msg)
	Write(c, status, e)
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, CodeBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, CodeUnauthorized, msg)
}

func InternalError(c *gin.Context, err error) {
	Fail(c, http.StatusInternalServerError, CodeInternalError, err.Error())
}
