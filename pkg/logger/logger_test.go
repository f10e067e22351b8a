package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure("info", "text", &bytes.Buffer{}) })

	tests := []struct {
		name      string
		level     string
		wantLevel logrus.Level
	}{
		{"debug level", "debug", logrus.DebugLevel},
		{"warn level", "warn", logrus.WarnLevel},
		{"empty falls back to info", "", logrus.InfoLevel},
		{"garbage falls back to info", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(tt.level, "text", &bytes.Buffer{})
			assert.Equal(t, tt.wantLevel, Log.GetLevel())
		})
	}
}

func TestFor_JSONCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure("info", "JSON", &buf)
	t.Cleanup(func() { Configure("info", "text", &bytes.Buffer{}) })

	For("engine").Info("tick")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, "tick", entry["msg"])
}
