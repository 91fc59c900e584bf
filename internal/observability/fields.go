package observability

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair carried on the context and attached to every log line.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField is a key-value pair for a Metrics line.
type MetricField struct {
	Key   string
	Value interface{}
}

type fieldsKey struct{}

const redacted = "[redacted]"

// sensitiveKeys never reach the log output with their value.
var sensitiveKeys = []string{"password", "secret", "token", "api_key", "apikey", "authorization"}

// WithFields returns a child context carrying fields on top of the parent's.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	parent := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(parent)+len(fields))
	merged = append(merged, parent...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(fieldsKey{}).([]Field); ok {
		return fields
	}
	return nil
}

func isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}

func zapField(key string, value interface{}) zapcore.Field {
	if isSensitive(key) {
		return zap.String(key, redacted)
	}
	return zap.Any(key, value)
}

// contextFields converts the context's fields, later keys winning over earlier ones.
func contextFields(ctx context.Context, extra ...MetricField) []zapcore.Field {
	fields := getObservabilityFields(ctx)
	order := make([]string, 0, len(fields)+len(extra))
	byKey := make(map[string]zapcore.Field, len(fields)+len(extra))

	add := func(key string, value interface{}) {
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = zapField(key, value)
	}
	for _, f := range fields {
		add(f.Key, f.Value)
	}
	for _, f := range extra {
		add(f.Key, f.Value)
	}

	out := make([]zapcore.Field, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}
