package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Logger struct {
		*zap.Logger
	}
	Level = zapcore.Level
	Field = zap.Field
)

// field helpers so callers don't need to import zap themselves
var (
	String     = zap.String
	Int        = zap.Int
	Int32      = zap.Int32
	Float32    = zap.Float32
	Float64    = zap.Float64
	Bool       = zap.Bool
	Duration   = zap.Duration
	Time       = zap.Time
	Any        = zap.Any
	ErrorField = zap.Error
)

var defaultLogger *Logger

func Default() *Logger {
	if defaultLogger == nil {
		defaultLogger = DevLogger(os.Stderr, zapcore.InfoLevel)
	}
	return defaultLogger
}

func ResetDefault(l *Logger) {
	defaultLogger = l
}

func ParseLevel(arg string) (Level, error) {
	return zapcore.ParseLevel(arg)
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l.Logger.Named(name)}
}

func (l *Logger) WithOptions(opts ...zap.Option) *Logger {
	return &Logger{l.Logger.WithOptions(opts...)}
}

// DevLogger creates a logger with a console encoder writing to out.
func DevLogger(out zapcore.WriteSyncer, lvl Level, opts ...zap.Option) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, lvl)
	return &Logger{zap.New(core, opts...)}
}

// ProdLogger creates a logger with a JSON encoder writing to out.
func ProdLogger(out zapcore.WriteSyncer, lvl Level, opts ...zap.Option) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), out, lvl)
	return &Logger{zap.New(core, opts...)}
}

// InitLogger sets up the default logger. format is "text" or "json".
// filters contains zapfilter rules (for example "debug:tyre.* info:*")
// to raise verbosity of selected named loggers only.
func InitLogger(format, level, filters string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	var l *Logger
	if format == "json" {
		l = ProdLogger(os.Stderr, lvl)
	} else {
		l = DevLogger(os.Stderr, lvl)
	}
	if filters != "" {
		rules, err := zapfilter.ParseRules(filters)
		if err != nil {
			return nil, err
		}
		l = &Logger{zap.New(zapfilter.NewFilteringCore(l.Core(), rules))}
	}
	ResetDefault(l)
	return l, nil
}
