package logger

import (
	"go.uber.org/zap"
)

// New 构造进程日志器；debug 模式下用开发配置（彩色、毫秒时间戳）
func New(mode string) (*zap.Logger, error) {
	if mode == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Must 启动期专用：日志器都建不起来时直接退出
func Must(mode string) *zap.Logger {
	l, err := New(mode)
	if err != nil {
		panic(err)
	}
	return l
}
