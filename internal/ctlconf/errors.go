package ctlconf

import "errors"

var (
	// ErrUnsupportedFormat 配置文件扩展名不是 .yaml/.yml/.json
	ErrUnsupportedFormat = errors.New("ctlconf: unsupported config format")

	// ErrLoadFailed 读取配置文件或默认值失败
	ErrLoadFailed = errors.New("ctlconf: failed to load config")

	// ErrParseFailed 配置内容无法解析或反序列化
	ErrParseFailed = errors.New("ctlconf: failed to parse config")

	// ErrInvalidConfig 配置项取值非法
	ErrInvalidConfig = errors.New("ctlconf: invalid config")
)
