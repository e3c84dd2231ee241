package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service.
// All methods accept a context first so request-scoped fields can be attached later.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sl *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds the service logger from config. Invalid values fall back to
// info-level production console logging.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sl: l.Sugar()}
}

func (z *zapLogger) Debug(_ context.Context, arg ...any)  { z.sl.Debug(arg...) }
func (z *zapLogger) Info(_ context.Context, arg ...any)   { z.sl.Info(arg...) }
func (z *zapLogger) Warn(_ context.Context, arg ...any)   { z.sl.Warn(arg...) }
func (z *zapLogger) Error(_ context.Context, arg ...any)  { z.sl.Error(arg...) }
func (z *zapLogger) Fatal(_ context.Context, arg ...any)  { z.sl.Fatal(arg...) }
func (z *zapLogger) DPanic(_ context.Context, arg ...any) { z.sl.DPanic(arg...) }
func (z *zapLogger) Panic(_ context.Context, arg ...any)  { z.sl.Panic(arg...) }

func (z *zapLogger) Debugf(_ context.Context, template string, arg ...any) {
	z.sl.Debugf(template, arg...)
}

func (z *zapLogger) Infof(_ context.Context, template string, arg ...any) {
	z.sl.Infof(template, arg...)
}

func (z *zapLogger) Warnf(_ context.Context, template string, arg ...any) {
	z.sl.Warnf(template, arg...)
}

func (z *zapLogger) Errorf(_ context.Context, template string, arg ...any) {
	z.sl.Errorf(template, arg...)
}

func (z *zapLogger) Fatalf(_ context.Context, template string, arg ...any) {
	z.sl.Fatalf(template, arg...)
}

func (z *zapLogger) DPanicf(_ context.Context, template string, arg ...any) {
	z.sl.DPanicf(template, arg...)
}

func (z *zapLogger) Panicf(_ context.Context, template string, arg ...any) {
	z.sl.Panicf(template, arg...)
}
