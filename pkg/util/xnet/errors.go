package xnet

import "errors"

var (
	// ErrInvalidEndpoint 表示端点结构无效（空输入、缺少 ']' 或端口分隔符）。
	ErrInvalidEndpoint = errors.New("xnet: invalid endpoint")

	// ErrInvalidHost 表示端点的主机部分无效。
	ErrInvalidHost = errors.New("xnet: invalid host")

	// ErrInvalidPort 表示端点的端口部分无效。
	ErrInvalidPort = errors.New("xnet: invalid port")

	// ErrInvalidKind 表示无法识别的主机类别名称。
	ErrInvalidKind = errors.New("xnet: invalid host kind")
)
