package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false))
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	require.NoError(t, Initialize(true))
	assert.True(t, JSONOutput)
	Cleanup()
}

func TestNopLoggerBeforeInitialize(t *testing.T) {
	// Package-level helpers must never panic, even on the default logger.
	Info("info")
	Infof("info %d", 1)
	Infow("info", "k", "v")
	Warn("warn")
	Debug("debug")
	Error("error")
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityTrace))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(9))
}
