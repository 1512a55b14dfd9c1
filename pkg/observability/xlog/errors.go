package xlog

import "errors"

var (
	// ErrNilOutput SetOutput 传入 nil
	ErrNilOutput = errors.New("xlog: nil output")

	// ErrInvalidLevel 无法识别的日志级别
	ErrInvalidLevel = errors.New("xlog: invalid level")

	// ErrInvalidFormat 无法识别的输出格式（仅支持 text、json）
	ErrInvalidFormat = errors.New("xlog: invalid format")

	// ErrInvalidRotation 轮转参数非法（空文件名、超出范围的大小/数量/天数）
	ErrInvalidRotation = errors.New("xlog: invalid rotation")

	// ErrBuilderUsed Builder 已经 Build 过
	ErrBuilderUsed = errors.New("xlog: builder already used")
)
