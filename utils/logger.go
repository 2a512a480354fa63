package utils

import (
	"fmt"

	"github.com/nzai/pubapi/config"
	"github.com/nzai/pubapi/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger build a development logger on stderr, teed into a rotating json file when c.File is set
func NewLogger(c config.Log) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		parsed, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: log level: %v", constants.ErrConfig, err)
		}
		level = parsed
	}

	lc := zap.NewDevelopmentConfig()
	lc.Level = zap.NewAtomicLevelAt(level)
	logger, err := lc.Build()
	if err != nil {
		return nil, err
	}

	if c.File == "" {
		return logger, nil
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   true,
	})
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), writer, lc.Level)

	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})), nil
}

// ReplaceLogger install the logger built from c as zap global
func ReplaceLogger(c config.Log) error {
	logger, err := NewLogger(c)
	if err != nil {
		zap.L().Warn("invalid log config", zap.Error(err))
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
