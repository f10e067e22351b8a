package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"snipes-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, domain.TickInterval, cfg.TickInterval)
	assert.Equal(t, domain.DefaultSettings(), cfg.Settings)
	assert.Equal(t, DefaultQueueSize, cfg.QueueSize)
	assert.NotZero(t, cfg.Seed)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvTickMs, "50")
	t.Setenv(EnvRicochet, "true")
	t.Setenv(EnvMayShoot, "false")
	t.Setenv(EnvQueueSize, "8")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.True(t, cfg.Settings.Ricochet)
	assert.False(t, cfg.Settings.SnipesMayShoot)
	assert.Equal(t, 8, cfg.QueueSize)
}

func TestLoadConfig_FromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNIPES_SEED=77\nSNIPES_RICOCHET=1\n"), 0o600))

	// godotenv.Load не перезаписывает уже заданные переменные; чистим их после теста
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvRicochet)
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.True(t, cfg.Settings.Ricochet)
}

func TestLoadConfig_Malformed(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "abc"},
		{EnvTickMs, "0"},
		{EnvTickMs, "fast"},
		{EnvRicochet, "maybe"},
		{EnvMayShoot, "2"},
		{EnvQueueSize, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
