package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Output always goes to stderr so panels
// written to stdout stay machine-readable.
func New(debug bool) (*zap.Logger, error) {
	return build(debug, "stderr")
}

// NewFile builds a logger for full-screen surfaces that own the terminal.
// It writes to path, or nowhere when path is empty; never to stderr.
func NewFile(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(io.Discard), level(debug))
		return zap.New(core), nil
	}
	return build(debug, path)
}

func build(debug bool, sink string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{sink}
	cfg.ErrorOutputPaths = []string{sink}
	cfg.Encoding = "console"
	cfg.EncoderConfig = encoderConfig()
	cfg.Level = level(debug)
	return cfg.Build()
}

func encoderConfig() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return enc
}

func level(debug bool) zap.AtomicLevel {
	if debug {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zapcore.WarnLevel)
}
