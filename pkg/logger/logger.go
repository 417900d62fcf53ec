package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileBufferSize    = 256 * 1024
	fileFlushInterval = 5 * time.Second
)

// Log is the process-wide logger. It discards everything until InitLogger runs.
var Log = zap.NewNop()

// Config selects the level and the optional rotating log file.
type Config struct {
	Level      string
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// InitLogger replaces Log. Entries always go to stdout; when Filename is set
// they are also written, buffered, to a rotating file.
func InitLogger(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	encoder := newEncoder()
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if cfg.Filename != "" {
		cores = append(cores, zapcore.NewCore(encoder, newFileSyncer(cfg), level))
	}

	Log = zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	zap.ReplaceGlobals(Log)

	return nil
}

func newEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func newFileSyncer(cfg *Config) zapcore.WriteSyncer {
	return &zapcore.BufferedWriteSyncer{
		WS: zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}),
		Size:          fileBufferSize,
		FlushInterval: fileFlushInterval,
	}
}

// Sync flushes buffered file output.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
