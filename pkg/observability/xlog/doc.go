// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/xaddrctl.log", xlog.WithMaxSize(50)).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// Builder 采用 first-error-wins：第一个配置错误之后的 Set 调用被跳过，错误由 Build 返回。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)，与 slog 数值一致。
// [ParseLevel] 从字符串解析；Level 实现 encoding.TextMarshaler/TextUnmarshaler。
// 派生 Logger（With/WithGroup）共享级别，[Leveler.SetLevel] 对整棵树生效。
//
// # 文件轮转
//
// [Builder.SetRotation] 使用 gopkg.in/natefinch/lumberjack.v2，按大小轮转，
// 通过 [WithMaxSize]、[WithMaxBackups]、[WithMaxAge]、[WithCompress] 调整。
// lumberjack 在首次写入后启动常驻 goroutine 清理旧备份；cleanup 只关闭文件句柄。
//
// # 便捷属性
//
// [Err]、[Duration]、[Count]、[Component]、[Operation]、[Input]、[Kind]。
//
// # 错误
//
// 配置错误均包装包级哨兵错误，可用 errors.Is 判断：
// [ErrNilOutput]、[ErrInvalidLevel]、[ErrInvalidFormat]、[ErrInvalidRotation]、[ErrBuilderUsed]。
package xlog
