// Package logging is the central logging package of the CLI. It holds our custom log formatters for zap.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var infoLevels = zap.LevelEnablerFunc(func(level zapcore.Level) bool {
	return level == zapcore.InfoLevel
})

// NewProductionLogger returns a logger that prints Info messages to stdout and Warn & Error messages to stderr.
// Progress and summary lines are logged at Info level, so they end up on stdout without any decoration.
func NewProductionLogger() *zap.SugaredLogger {
	return newLogger(os.Stdout, os.Stderr, false)
}

// NewDebugLogger is similar to our production logger, however it also includes debug output & stacktraces
func NewDebugLogger() *zap.SugaredLogger {
	return newLogger(os.Stdout, os.Stderr, true)
}

// NewLogger builds a logger writing to the provided streams. It is mainly useful for capturing output.
func NewLogger(stdout, stderr io.Writer, debug bool) *zap.SugaredLogger {
	return newLogger(zapcore.AddSync(stdout), zapcore.AddSync(stderr), debug)
}

func newLogger(stdout, stderr zapcore.WriteSyncer, debug bool) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		MessageKey: "M",
		LevelKey:   "L",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			// Anything other than "info" logs will have a capitalized level prefix.
			if lvl != zapcore.InfoLevel {
				zapcore.CapitalColorLevelEncoder(lvl, enc)
			}
		},
	}

	errorLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return !infoLevels(level) && level != zapcore.DebugLevel
	})

	if debug {
		encoderConfig.NameKey = "N"
		encoderConfig.StacktraceKey = "S"
		encoderConfig.TimeKey = "T"
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		errorLevels = func(level zapcore.Level) bool {
			return !infoLevels(level)
		}
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	logger := zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(stdout), infoLevels),
		zapcore.NewCore(encoder, zapcore.Lock(stderr), errorLevels),
	))

	if debug {
		logger = logger.WithOptions(zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return logger.Sugar()
}
