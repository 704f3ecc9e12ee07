package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"listing-engine/logger"
)

func TestInitialize_Development(t *testing.T) {
	logger.Initialize("development")
	assert.NotNil(t, logger.Log)
	assert.True(t, logger.Log.Core().Enabled(zapcore.DebugLevel))
}

func TestInitialize_Production(t *testing.T) {
	logger.Initialize("production")
	assert.NotNil(t, logger.Log)
	assert.False(t, logger.Log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Log.Core().Enabled(zapcore.InfoLevel))
}

func TestInitializeWithWriter_CapturesOutput(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter("production", &buf)

	logger.Info("draft array loaded", zap.Int("count", 2))
	logger.Warn("image probe slow", zap.String("url", "https://cdn.example.com/a.png"))
	logger.Error("fixture rejected", errors.New("bad fixture"))

	out := buf.String()
	assert.Contains(t, out, "draft array loaded")
	assert.Contains(t, out, "image probe slow")
	assert.Contains(t, out, "fixture rejected")
	assert.Contains(t, out, "bad fixture")
	assert.Contains(t, out, "timestamp")
}

func TestInitializeWithWriter_DevelopmentKeepsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter("development", &buf)

	logger.Debug("probing image slot", zap.Int("slot", 1))
	assert.Contains(t, buf.String(), "probing image slot")
}

func TestError_NilErrorOmitsField(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter("production", &buf)

	logger.Error("plain failure", nil)
	assert.Contains(t, buf.String(), "plain failure")
	assert.NotContains(t, buf.String(), `"error":`)
}
