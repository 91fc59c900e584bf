package observability

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap and pulls structured fields off the context.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger builds a JSON production logger, or a console logger at debug level outside production.
func NewLogger(production bool) *Logger {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if production {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		zapLogger = zap.NewExample()
	}
	zapLogger = zapLogger.WithOptions(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func (l *Logger) with(ctx context.Context) *zap.Logger {
	return l.zapLogger.With(contextFields(ctx)...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.with(ctx).Info(msg)
}

// InfoWithError logs an expected failure (bad input, best-effort step) without a stack trace.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.with(ctx).Info(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.with(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.with(ctx).Warn(msg)
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.with(ctx).Debug(msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.with(ctx).Fatal(msg, zap.Error(err))
}

// Metrics emits one "Metrics" line merging the context fields with fields.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", contextFields(ctx, fields...)...)
}
