package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the logging middleware.
const RequestIDKey ctxKey = "req_id"

// Time measures an operation and logs its duration (and error, if any) when
// the returned func runs. Usage: defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			zap.L().Warn("op failed", append(fields, zap.Error(*errp))...)
			return
		}
		zap.L().Debug("op", fields...)
	}
}
