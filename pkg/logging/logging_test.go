package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ssargent/chasave/pkg/config"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.Logging
		enabled  zapcore.Level
		disabled []zapcore.Level
	}{
		{"console debug", config.Logging{Level: "debug", Format: "console"}, zapcore.DebugLevel, nil},
		{"json warn", config.Logging{Level: "warn", Format: "json"}, zapcore.WarnLevel, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel}},
		{"unknown level falls back to info", config.Logging{Level: "chatty"}, zapcore.InfoLevel, []zapcore.Level{zapcore.DebugLevel}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.cfg)
			require.NoError(t, err)
			defer log.Sync() //nolint:errcheck

			assert.True(t, log.Core().Enabled(tc.enabled))
			for _, level := range tc.disabled {
				assert.False(t, log.Core().Enabled(level))
			}
		})
	}
}
