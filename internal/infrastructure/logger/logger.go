package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cienciascontic/textlabx/internal/infrastructure/config"
)

const name = "textlabx"

var encoders = map[string]func(zapcore.EncoderConfig) zapcore.Encoder{
	"json":    zapcore.NewJSONEncoder,
	"console": zapcore.NewConsoleEncoder,
}

// NewLogger creates the process logger on stdout
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return New(cfg, zapcore.Lock(os.Stdout)), nil
}

// New creates a logger writing to ws. Unknown levels mean info and
// unknown formats mean JSON.
func New(cfg *config.LogConfig, ws zapcore.WriteSyncer) *zap.Logger {
	newEncoder, ok := encoders[cfg.Format]
	if !ok {
		newEncoder = zapcore.NewJSONEncoder
	}

	core := zapcore.NewCore(newEncoder(encoderConfig()), ws, parseLevel(cfg.Level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named(name)
}

func parseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.MillisDurationEncoder
	return ec
}
