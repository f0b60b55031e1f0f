package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zapcore.InfoLevel)

	logger.Info("starting server", zap.Int("port", 5001))

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "starting server")
	assert.Contains(t, line, `{"port": 5001}`)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`, line)
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zapcore.WarnLevel)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}
