package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Builder 构建 Logger。
//
// first-error-wins：遇到第一个配置错误后，后续 Set 调用被跳过，错误在 Build 时返回。
// Builder 为一次性使用，重复 Build 返回 [ErrBuilderUsed]。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	rotator   *lumberjack.Logger
	onError   func(error)
	built     bool
	err       error
}

// New 创建 Builder，默认输出 stderr、Info 级别、text 格式。
func New() *Builder {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: lv,
		format:   FormatText,
	}
}

// SetOutput 设置输出目标。与 SetRotation 互斥，后调用者生效。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err != nil {
		return b
	}
	if w == nil {
		b.err = ErrNilOutput
		return b
	}
	b.output = w
	b.rotator = nil
	return b
}

func (b *Builder) SetLevel(level Level) *Builder {
	if b.err == nil {
		b.levelVar.Set(slog.Level(level))
	}
	return b
}

// SetLevelString 从字符串设置级别，见 [ParseLevel]。
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetFormat 设置输出格式：text 或 json（大小写不敏感）。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case FormatText, FormatJSON:
		b.format = f
	default:
		b.err = fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	return b
}

func (b *Builder) SetAddSource(enable bool) *Builder {
	if b.err == nil {
		b.addSource = enable
	}
	return b
}

// SetRotation 输出到可轮转的日志文件（lumberjack）。
// 文件在首次写入时创建；Build 返回的 cleanup 负责关闭。
func (b *Builder) SetRotation(filename string, opts ...RotateOption) *Builder {
	if b.err != nil {
		return b
	}
	r, err := newRotator(filename, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.rotator = r
	b.output = r
	return b
}

// SetOnError 设置 handler 写入失败时的回调
func (b *Builder) SetOnError(fn func(error)) *Builder {
	if b.err == nil {
		b.onError = fn
	}
	return b
}

// Build 构建 Logger，返回 cleanup 用于释放轮转文件句柄。
// cleanup 幂等，可多次调用。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	if b.built {
		return nil, nil, ErrBuilderUsed
	}
	b.built = true

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}

	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}

	logger := &xlogger{
		handler:        handler,
		levelVar:       b.levelVar,
		addSource:      b.addSource,
		onError:        b.onError,
		inErrorHandler: new(atomic.Bool),
	}
	return logger, b.cleanup(), nil
}

func (b *Builder) cleanup() func() error {
	r := b.rotator
	if r == nil {
		return func() error { return nil }
	}
	var (
		once sync.Once
		err  error
	)
	return func() error {
		once.Do(func() { err = r.Close() })
		return err
	}
}
