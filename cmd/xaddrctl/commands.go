package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xaddr/internal/addrcheck"
	"github.com/omeyang/xaddr/internal/ctlconf"
	"github.com/omeyang/xaddr/pkg/observability/xlog"
	"github.com/omeyang/xaddr/pkg/util/xnet"
)

// stdinName 标准输入在输出中的名称
const stdinName = "-"

// 创建所有子命令。
func createCommands(e *env) []*cli.Command {
	return []*cli.Command{
		createCheckCommand(e),
		createClassifyCommand(e),
		createEndpointCommand(e),
		createBatchCommand(e),
	}
}

func kindList() string {
	ks := addrcheck.Kinds()
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return strings.Join(names, "/")
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:            "check",
		Usage:           "按类别校验文本 (" + kindList() + ")",
		ArgsUsage:       "<kind> <text>...",
		SkipFlagParsing: true, // "-bad" 之类的输入不能被当作 flag
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return newUsageError("check 需要 <kind> 和至少一个 <text>")
			}
			kind, err := addrcheck.ParseKind(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			return e.cmdCheck(ctx, kind, args[1:])
		},
	}
}

func (e *env) cmdCheck(ctx context.Context, kind addrcheck.Kind, inputs []string) error {
	rejected := 0
	for _, in := range inputs {
		verdict := "valid"
		if !addrcheck.Check(kind, in) {
			verdict = "invalid"
			rejected++
			e.logger.Debug(ctx, "rejected", xlog.Input(in), xlog.Kind(kind.String()))
		}
		fmt.Fprintf(e.stdout, "%s\t%s\n", verdict, in)
	}
	return e.finish(ctx, "check", len(inputs), rejected)
}

// createClassifyCommand 创建 classify 子命令。
func createClassifyCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:            "classify",
		Usage:           "输出主机文本的类别 (ipv4/ipv6/domain/hostname/invalid)",
		ArgsUsage:       "<text>...",
		SkipFlagParsing: true, // "-bad" 之类的输入不能被当作 flag
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return newUsageError("classify 需要至少一个 <text>")
			}
			return e.cmdClassify(ctx, args)
		},
	}
}

func (e *env) cmdClassify(ctx context.Context, inputs []string) error {
	rejected := 0
	for _, in := range inputs {
		kind := xnet.ClassifyHost(in)
		if kind == xnet.KindInvalid {
			rejected++
			e.logger.Debug(ctx, "rejected", xlog.Input(in), xlog.Kind(kind.String()))
		}
		fmt.Fprintf(e.stdout, "%s\t%s\n", kind, in)
	}
	return e.finish(ctx, "classify", len(inputs), rejected)
}

// createEndpointCommand 创建 endpoint 子命令。
func createEndpointCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:            "endpoint",
		Usage:           "拆分 host:port 端点（IPv6 需使用 [addr]:port）",
		ArgsUsage:       "<host:port>...",
		SkipFlagParsing: true, // "-bad" 之类的输入不能被当作 flag
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return newUsageError("endpoint 需要至少一个 <host:port>")
			}
			return e.cmdEndpoint(ctx, args)
		},
	}
}

func (e *env) cmdEndpoint(ctx context.Context, inputs []string) error {
	rejected := 0
	for _, in := range inputs {
		ep, err := xnet.ParseEndpoint(in)
		if err != nil {
			rejected++
			e.logger.Debug(ctx, "rejected", xlog.Input(in), xlog.Err(err))
			fmt.Fprintf(e.stdout, "invalid\t%s\t%v\n", in, err)
			continue
		}
		fmt.Fprintf(e.stdout, "%s\t%s\thost=%s port=%d\n", ep.Kind, in, ep.Host, ep.Port)
	}
	return e.finish(ctx, "endpoint", len(inputs), rejected)
}

// createBatchCommand 创建 batch 子命令。
func createBatchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "batch",
		Usage:        "逐行校验文件，空行与 # 注释行被忽略",
		ArgsUsage:    "[--stdin] [FILE...]",
		OnUsageError: e.onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "校验类别，默认取配置 batch.kind",
			},
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "同时读取标准输入（未给出 FILE 时默认读取）",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   fmt.Sprintf("并发处理的文件数 [%d, %d]，默认取配置 batch.workers", ctlconf.MinWorkers, ctlconf.MaxWorkers),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kindName := e.cfg.Batch.Kind
			if cmd.IsSet("kind") {
				kindName = cmd.String("kind")
			}
			kind, err := addrcheck.ParseKind(kindName)
			if err != nil {
				return &usageError{err: err}
			}
			workers := e.cfg.Batch.Workers
			if cmd.IsSet("workers") {
				workers = cmd.Int("workers")
			}
			if workers < ctlconf.MinWorkers || workers > ctlconf.MaxWorkers {
				return newUsageError("--workers %d 超出范围 [%d, %d]", workers, ctlconf.MinWorkers, ctlconf.MaxWorkers)
			}
			files, err := batchInputs(cmd.Args().Slice(), cmd.Bool("stdin"))
			if err != nil {
				return err
			}
			return e.cmdBatch(ctx, kind, workers, files)
		},
	}
}

// batchInputs 整理 batch 的输入列表，标准输入以 stdinName 表示。
//
// urfave/cli 遇到单独的 "-" 会停止解析并丢弃其后的全部参数；空文件名同样无意义，
// 因此这两种写法一律拒绝，标准输入只能通过 --stdin 或省略 FILE 选择。
func batchInputs(args []string, stdin bool) ([]string, error) {
	for _, a := range args {
		switch a {
		case stdinName:
			return nil, newUsageError("不支持以 %q 表示标准输入，请使用 --stdin", stdinName)
		case "":
			return nil, newUsageError("文件名不能为空")
		}
	}
	files := args
	if stdin || len(files) == 0 {
		files = append([]string{stdinName}, files...)
	}
	return files, nil
}

// cmdBatch 并发扫描多个文件。
// 每条被拒绝的行输出为 "FILE:LINE\tTEXT"；同一文件内的行按顺序输出，文件之间交错。
func (e *env) cmdBatch(ctx context.Context, kind addrcheck.Kind, workers int, files []string) error {
	start := time.Now()
	var (
		mu    sync.Mutex
		total addrcheck.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, name := range files {
		g.Go(func() error {
			sum, err := e.scanFile(gctx, name, kind, &mu)
			mu.Lock()
			total.Add(sum)
			mu.Unlock()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error(ctx, "batch aborted", xlog.Err(err))
		return err
	}

	fmt.Fprintf(e.stdout, "total=%d valid=%d rejected=%d\n", total.Total, total.Valid, total.Rejected)
	e.logger.Info(ctx, "batch done",
		xlog.Kind(kind.String()),
		xlog.Count(len(files)),
		xlog.Duration(time.Since(start)),
	)
	return e.finish(ctx, "batch", total.Total, total.Rejected)
}

func (e *env) scanFile(ctx context.Context, name string, kind addrcheck.Kind, mu *sync.Mutex) (addrcheck.Summary, error) {
	r := e.stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return addrcheck.Summary{}, err
		}
		defer f.Close()
		r = f
	}

	logger := e.logger.With(xlog.Operation("batch"))
	return addrcheck.Scan(ctx, r, kind, func(rej addrcheck.Rejection) error {
		logger.Debug(ctx, "rejected", xlog.Input(rej.Input), xlog.Kind(kind.String()))
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintf(e.stdout, "%s:%d\t%s\n", name, rej.Line, rej.Input)
		return err
	})
}

// finish 记录汇总日志，存在被拒绝的输入时返回退出码 1。
func (e *env) finish(ctx context.Context, op string, total, rejected int) error {
	e.logger.Info(ctx, "summary",
		xlog.Operation(op),
		xlog.Count(total),
		slog.Int("rejected", rejected),
	)
	if rejected > 0 {
		return &exitError{code: exitRejected}
	}
	return nil
}
