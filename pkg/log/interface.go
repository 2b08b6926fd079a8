package log

import "context"

// Logger is the structured logger used across the service.
// Every method takes the request context first so trace fields can be attached later.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
}

// Init builds a zap backed Logger. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	return newZapLogger(cfg)
}
