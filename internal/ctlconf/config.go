// Package ctlconf 加载 xaddrctl 的配置。
//
// 加载顺序：内置默认值（koanf structs provider）→ 配置文件（可选，yaml/json）。
// 命令行参数由调用方在 Load 之后覆盖，最后调用 [Config.Validate]。
//
//	log:
//	  level: debug
//	  format: json
//	  file: /var/log/xaddrctl.log
//	batch:
//	  kind: endpoint
//	  workers: 8
package ctlconf

import (
	"fmt"
	"strings"

	"github.com/omeyang/xaddr/internal/addrcheck"
	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

// 批量模式并发度范围
const (
	MinWorkers = 1
	MaxWorkers = 256
)

// Config xaddrctl 配置
type Config struct {
	Log   LogConfig   `koanf:"log"`
	Batch BatchConfig `koanf:"batch"`
}

// LogConfig 日志配置。File 为空时输出到 stderr。
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// BatchConfig batch 命令配置
type BatchConfig struct {
	Kind    string `koanf:"kind"`
	Workers int    `koanf:"workers"`
}

// Default 返回内置默认配置
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Format:     xlog.FormatText,
			MaxSizeMB:  xlog.DefaultMaxSizeMB,
			MaxBackups: xlog.DefaultMaxBackups,
			MaxAgeDays: xlog.DefaultMaxAgeDays,
			Compress:   xlog.DefaultCompress,
		},
		Batch: BatchConfig{
			Kind:    string(addrcheck.KindHost),
			Workers: 4,
		},
	}
}

// Validate 校验配置；返回的错误包装 [ErrInvalidConfig]。
func (c *Config) Validate() error {
	if _, err := xlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case xlog.FormatText, xlog.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := addrcheck.ParseKind(c.Batch.Kind); err != nil {
		return fmt.Errorf("%w: batch.kind: %w", ErrInvalidConfig, err)
	}
	if c.Batch.Workers < MinWorkers || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("%w: batch.workers %d out of range [%d, %d]",
			ErrInvalidConfig, c.Batch.Workers, MinWorkers, MaxWorkers)
	}
	return nil
}

// RotateOptions 将文件轮转配置转换为 xlog 选项
func (c *LogConfig) RotateOptions() []xlog.RotateOption {
	return []xlog.RotateOption{
		xlog.WithMaxSize(c.MaxSizeMB),
		xlog.WithMaxBackups(c.MaxBackups),
		xlog.WithMaxAge(c.MaxAgeDays),
		xlog.WithCompress(c.Compress),
	}
}
