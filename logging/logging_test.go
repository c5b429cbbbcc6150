package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("production", "debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New("development", "loud")
	assert.Error(t, err)
}

func TestConfigureEncoding(t *testing.T) {
	assert.Equal(t, "console", configure("development", zapcore.InfoLevel).Encoding)
	assert.Equal(t, "json", configure("production", zapcore.InfoLevel).Encoding)
}
