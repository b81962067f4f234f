package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestDefaultInfo проверяет создание информации о сборке по умолчанию
func TestDefaultInfo(t *testing.T) {
	info := DefaultInfo()

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestNewInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  Info
	}{
		{
			name:    "all values",
			version: "v1.0.0", date: "2026-01-01", commit: "abc123",
			want: Info{Version: "v1.0.0", Date: "2026-01-01", Commit: "abc123"},
		},
		{
			name:    "values not injected",
			version: "", date: "", commit: "abc123",
			want: Info{Version: "N/A", Date: "N/A", Commit: "abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewInfo(tt.version, tt.date, tt.commit))
		})
	}
}

// TestString проверяет строковое представление информации о сборке
func TestString(t *testing.T) {
	info := NewInfo("v1.0.0", "2026-01-01", "abc123")
	assert.Equal(t, "Version: v1.0.0, Date: 2026-01-01, Commit: abc123", info.String())
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	NewInfo("v1.0.0", "2026-01-01", "abc123").Log(zap.New(core))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Build info", entry.Message)
	assert.Equal(t, map[string]interface{}{
		"version":    "v1.0.0",
		"build_date": "2026-01-01",
		"commit":     "abc123",
	}, entry.ContextMap())
}
