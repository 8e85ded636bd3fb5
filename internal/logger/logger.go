package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Hashimp6/broperty/internal/config"
)

// New builds the application logger and installs it as the zap global.
// Production mode writes JSON, development mode writes colored console lines.
// When cfg.File is set, entries are also appended as JSON to a rotating file.
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	return build(cfg, os.Stdout)
}

func build(cfg config.LoggerConfig, stdout io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var zapConfig zap.Config
	if cfg.Mode == "development" {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "ts"
		zapConfig.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}
	atom := zap.NewAtomicLevelAt(level)

	var stdoutEncoder zapcore.Encoder
	if cfg.Mode == "development" {
		stdoutEncoder = zapcore.NewConsoleEncoder(zapConfig.EncoderConfig)
	} else {
		stdoutEncoder = zapcore.NewJSONEncoder(zapConfig.EncoderConfig)
	}
	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder, zapcore.AddSync(stdout), atom),
	}

	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		fileEncoder := zap.NewProductionEncoderConfig()
		fileEncoder.TimeKey = "ts"
		fileEncoder.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoder),
			zapcore.AddSync(rotator),
			atom,
		))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Mode == "development" {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	} else {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), opts...)
	zap.ReplaceGlobals(logger)
	return logger, nil
}
