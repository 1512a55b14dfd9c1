package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key，保持各命令输出字段一致。
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyInput     = "input"
	KeyKind      = "kind"
)

// Err 创建错误属性；err 为 nil 时返回空属性，slog 会忽略它。
//
//	if err != nil {
//	    logger.Error(ctx, "load config failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5ms"）。
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }

func Operation(name string) slog.Attr { return slog.String(KeyOperation, name) }

// Input 记录被校验的原始文本
func Input(s string) slog.Attr { return slog.String(KeyInput, s) }

// Kind 记录校验类别或分类结果
func Kind(k string) slog.Attr { return slog.String(KeyKind, k) }
