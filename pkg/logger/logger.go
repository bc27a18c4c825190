// Package logger builds the zap loggers shared by the service and the CLI.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production sugared logger at info level tagged with service.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, zapcore.InfoLevel)
}

// NewWithLevel returns a production sugared logger tagged with service.
// Logs go to stderr so stdout stays free for checksum output.
func NewWithLevel(service string, level zapcore.Level) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}

// ParseLevel converts a level name such as "debug" or "warn" into a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	return zapcore.ParseLevel(name)
}
