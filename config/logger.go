package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggingConfig struct {
	Level string `yaml:"level" env:"THEMEPLANE_LOG_LEVEL"`
}

// Prepare returns the console logger of the program: info and debug go to
// stdout, errors to stderr.
func (conf LoggingConfig) Prepare() (*zap.Logger, error) {
	return conf.prepare(os.Stdout, os.Stderr)
}

// PrepareStderr is like Prepare but keeps stdout free for command output.
func (conf LoggingConfig) PrepareStderr() (*zap.Logger, error) {
	return conf.prepare(os.Stderr, os.Stderr)
}

func (conf LoggingConfig) prepare(low, high zapcore.WriteSyncer) (*zap.Logger, error) {
	var minLevel zapcore.Level
	switch conf.Level {
	case "normal":
		minLevel = zapcore.InfoLevel
	case "debug":
		minLevel = zapcore.DebugLevel
	default:
		return zap.NewNop(), nil
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return minLevel <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(low), lowPriority),
		zapcore.NewCore(encoder, zapcore.Lock(high), highPriority),
	)
	return zap.New(core), nil
}
