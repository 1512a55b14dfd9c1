// xaddrctl 是网络地址文本的命令行校验工具。
//
// 用法:
//
//	xaddrctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config       配置文件（.yaml/.yml/.json）
//	    --log-level    日志级别 (debug/info/warn/error)
//	    --log-format   日志格式 (text/json)
//	    --log-file     日志文件（lumberjack 轮转），默认 stderr
//
// 命令:
//
//	check <kind> <text>...     按类别校验 (ipv4/ipv6/ip/hostname/domain/host/port/endpoint)
//	classify <text>...         输出主机文本的类别
//	endpoint <text>...         拆分 host:port 端点
//	batch [--stdin] [FILE...]  逐行校验文件，省略 FILE 或指定 --stdin 时读取 stdin
//
// 退出码:
//
//	0: 所有输入均合法
//	1: 存在被拒绝的输入，或运行时错误（如文件无法读取）
//	2: 参数错误（未知类别、缺少参数、配置非法等）
//
// 示例:
//
//	xaddrctl check ipv4 192.168.1.1 01.1.1.1
//	xaddrctl classify ::1 example.com db-01
//	xaddrctl endpoint '[fe80::1%eth0]:8080' example.com:443
//	xaddrctl batch --kind endpoint --workers 8 upstreams.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xaddr/internal/ctlconf"
	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// 退出码
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env 命令执行环境，由根命令的 Before 初始化。
type env struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	cfg     *ctlconf.Config
	logger  xlog.Logger
	cleanup func() error
}

// createApp 创建 CLI 应用。
func createApp(e *env) *cli.Command {
	return &cli.Command{
		Name:      "xaddrctl",
		Usage:     "校验 IPv4/IPv6 地址、主机名、端口与 host:port 端点",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径，按大小轮转",
			},
		},
		Before:       e.setup,
		Commands:     createCommands(e),
		OnUsageError: e.onUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(e.stderr, err)
			}
		},
	}
}

// setup 加载配置、叠加命令行覆盖并构建 logger。
// 配置问题一律视为参数错误。
func (e *env) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := ctlconf.Load(cmd.String("config"))
	if err != nil {
		return ctx, &usageError{err: err}
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return ctx, &usageError{err: err}
	}

	b := xlog.New().
		SetOutput(e.stderr).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format).
		SetOnError(func(err error) {
			fmt.Fprintf(e.stderr, "xaddrctl: log write failed: %v\n", err)
		})
	if cfg.Log.File != "" {
		b.SetRotation(cfg.Log.File, cfg.Log.RotateOptions()...)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return ctx, &usageError{err: err}
	}

	e.cfg = cfg
	e.logger = logger.With(xlog.Component("xaddrctl"))
	e.cleanup = cleanup
	return ctx, nil
}

// onUsageError 将 flag 解析错误转为 usageError，由 run() 输出到 stderr；
// stdout 只保留校验结果。
func (e *env) onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}

func (e *env) close() {
	if e.cleanup == nil {
		return
	}
	if err := e.cleanup(); err != nil {
		fmt.Fprintf(e.stderr, "xaddrctl: close log file: %v\n", err)
	}
	e.cleanup = nil
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	defer e.close()

	app := createApp(e)
	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return exitUsage
		}
		if isCLIUsageError(err) {
			// flag 解析器已向 stderr 输出详情
			return exitUsage
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return exitRejected
	}
	return exitOK
}

// exitError 命令已完成输出，只需设置非零退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 参数或配置错误，映射为退出码 2。
type usageError struct {
	err error
}

func newUsageError(format string, args ...any) *usageError {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// cliUsagePhrases urfave/cli 与 flag 包对参数错误使用的固定措辞。
var cliUsagePhrases = []string{
	"flag provided but not defined",
	"invalid value",
	"flag needs an argument",
	"No help topic for",
	"Required flag",
}

// isCLIUsageError 判断错误是否来自 CLI 框架的参数解析。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, p := range cliUsagePhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
