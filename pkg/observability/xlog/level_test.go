package xlog_test

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    xlog.Level
		wantErr bool
	}{
		{"debug", xlog.LevelDebug, false},
		{"INFO", xlog.LevelInfo, false},
		{" warn ", xlog.LevelWarn, false},
		{"warning", xlog.LevelWarn, false},
		{"Error", xlog.LevelError, false},
		{"", xlog.LevelInfo, true},
		{"trace", xlog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := xlog.ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, xlog.ErrInvalidLevel)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", xlog.LevelDebug.String())
	assert.Equal(t, "INFO", xlog.LevelInfo.String())
	assert.Equal(t, "WARN", xlog.LevelWarn.String())
	assert.Equal(t, "ERROR", xlog.LevelError.String())
	assert.Equal(t, "INFO+2", xlog.Level(2).String())
	assert.Equal(t, slog.LevelWarn, xlog.LevelWarn.Slog())
}

func TestLevel_TextRoundTrip(t *testing.T) {
	var cfg struct {
		Level xlog.Level `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"level":"warn"}`), &cfg))
	assert.Equal(t, xlog.LevelWarn, cfg.Level)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"WARN"}`, string(out))

	err = json.Unmarshal([]byte(`{"level":"loud"}`), &cfg)
	assert.ErrorIs(t, err, xlog.ErrInvalidLevel)
}
