package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calcsuite/loan-engine/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
	assert.Equal(t, constants.DefaultMaxBodySizeBytes, cfg.BodySizeBytes())
	assert.Empty(t, cfg.RedisAddress)
}

func TestLoadConfigParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	content := `
address: ":9090"
maxBodySize: "1M"
redisAddress: "localhost:6379"
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, int64(1024*1024), cfg.BodySizeBytes())
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{
			name:     "Bare number",
			input:    "1024",
			expected: 1024,
		},
		{
			name:     "Kilobytes",
			input:    "256K",
			expected: 256 * 1024,
		},
		{
			name:     "Megabytes with suffix",
			input:    "10MB",
			expected: 10 * 1024 * 1024,
		},
		{
			name:     "Empty falls back to default",
			input:    "",
			expected: constants.DefaultMaxBodySizeBytes,
		},
		{
			name:    "Unsupported unit",
			input:   "5T",
			wantErr: true,
		},
		{
			name:    "No digits",
			input:   "MB",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
