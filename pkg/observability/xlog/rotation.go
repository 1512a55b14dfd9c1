package xlog

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
	DefaultCompress   = true
)

// 轮转参数上限
const (
	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

// RotateOption 配置日志文件轮转
type RotateOption func(*lumberjack.Logger)

// WithMaxSize 单个日志文件最大大小（MB），超过后触发轮转
func WithMaxSize(mb int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxSize = mb }
}

// WithMaxBackups 保留的备份数量，0 表示不限制
func WithMaxBackups(n int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxBackups = n }
}

// WithMaxAge 备份保留天数，0 表示不按天数清理
func WithMaxAge(days int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxAge = days }
}

// WithCompress 是否 gzip 压缩备份
func WithCompress(enable bool) RotateOption {
	return func(l *lumberjack.Logger) { l.Compress = enable }
}

// WithLocalTime 备份文件名使用本地时间，默认 UTC
func WithLocalTime(enable bool) RotateOption {
	return func(l *lumberjack.Logger) { l.LocalTime = enable }
}

// newRotator 创建 lumberjack 轮转器并校验参数。
func newRotator(filename string, opts ...RotateOption) (*lumberjack.Logger, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidRotation)
	}
	if strings.HasSuffix(filename, string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %q is a directory", ErrInvalidRotation, filename)
	}

	r := &lumberjack.Logger{
		Filename:   filepath.Clean(filename),
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
		Compress:   DefaultCompress,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	switch {
	case r.MaxSize <= 0 || r.MaxSize > maxSizeMB:
		return nil, fmt.Errorf("%w: max size %d MB out of range (0, %d]", ErrInvalidRotation, r.MaxSize, maxSizeMB)
	case r.MaxBackups < 0 || r.MaxBackups > maxBackups:
		return nil, fmt.Errorf("%w: max backups %d out of range [0, %d]", ErrInvalidRotation, r.MaxBackups, maxBackups)
	case r.MaxAge < 0 || r.MaxAge > maxAgeDays:
		return nil, fmt.Errorf("%w: max age %d days out of range [0, %d]", ErrInvalidRotation, r.MaxAge, maxAgeDays)
	}
	return r, nil
}
