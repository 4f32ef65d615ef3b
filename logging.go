package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger writes to a rotating local file so a frozen game session leaves a
// trace. Debug runs log everything; normal runs stay at info.
func newLogger(debug bool) (*zap.SugaredLogger, func()) {
	lj := &lumberjack.Logger{
		Filename:   "cauldron.log",
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level)

	logger := zap.New(core, zap.AddCaller()).Sugar()
	return logger, func() { _ = logger.Sync() }
}
