// Package alog provides the global structured logger for aliasgate.
// It wraps zap behind a small surface so packages can log without
// threading a logger through every constructor.
package alog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global sugared logger instance.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger until Initialize runs, so packages can log
	// during startup without nil checks.
	Logger = zap.NewNop().Sugar()
}

// Initialize configures the global logger.
// When jsonOutput is true, logs are emitted as structured JSON for
// machine consumption; otherwise a console encoder writes to stderr.
// MCP servers speak JSON-RPC on stdout, so logs always go to stderr.
func Initialize(jsonOutput, debug bool) error {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
	Logger = zap.New(core).Sugar()
	return nil
}

// Debug logs a debug message using the global logger.
func Debug(args ...any) { Logger.Debug(args...) }

// Debugw logs a debug message with key-value fields.
func Debugw(msg string, kv ...any) { Logger.Debugw(msg, kv...) }

// Info logs an informational message using the global logger.
func Info(args ...any) { Logger.Info(args...) }

// Infow logs an informational message with key-value fields.
func Infow(msg string, kv ...any) { Logger.Infow(msg, kv...) }

// Warnw logs a warning with key-value fields.
func Warnw(msg string, kv ...any) { Logger.Warnw(msg, kv...) }

// Errorw logs an error with key-value fields.
func Errorw(msg string, kv ...any) { Logger.Errorw(msg, kv...) }

// Sync flushes buffered log entries. Callers should invoke it before exit.
func Sync() {
	_ = Logger.Sync()
}
