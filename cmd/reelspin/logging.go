package main

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/reelspin/config"
)

const timeFmt = "2006/01/02 15:04:05.000"

// setupLogging builds the file logger, the terminal belongs to the game so nothing goes to stdout
// Returns a no-op logger when disabled; the close func flushes and closes the rotating file
func setupLogging(cfg config.Log) (*zap.Logger, func()) {
	if !cfg.Enabled {
		return zap.NewNop(), func() {}
	}

	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		lv.SetLevel(zapcore.InfoLevel)
	}

	// lumberjack creates missing parent directories on first write
	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg()), zapcore.AddSync(w), lv)
	log := zap.New(core, zap.AddCaller())
	return log, func() {
		_ = log.Sync()
		_ = w.Close()
	}
}

func encCfg() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	return cfg
}
