package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		enabled     zapcore.Level
		disabled    zapcore.Level
	}{
		{"development defaults to debug", "development", "", zapcore.DebugLevel, zapcore.Level(-2)},
		{"production defaults to info", "production", "", zapcore.InfoLevel, zapcore.DebugLevel},
		{"explicit level wins", "development", "warn", zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.environment, tt.level)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.False(t, log.Core().Enabled(tt.disabled))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.Error(t, err)
}
