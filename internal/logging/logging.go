// Package logging builds the process logger.
//
// Output is one console-encoded line per entry: ISO-8601 timestamp, level,
// logger name, message, then structured fields.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w at the given minimum level.
// A nil w writes to standard output.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	if w == nil {
		w = os.Stdout
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(os.Stderr)))
}
