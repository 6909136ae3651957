package model

import "time"

// TimeLayout 线上时间串固定格式：本地时区、秒级精度、不带时区偏移
// 这是对外兼容约定，不能改
const TimeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}
