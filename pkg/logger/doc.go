// Package logger builds log/slog loggers with context-aware attribute
// injection and optional Sentry fan-out.
//
// [New] returns a JSON logger writing to stdout. Context extractors run on
// every log call and append attributes pulled from the context:
//
//	log := logger.New(func(ctx context.Context) (slog.Attr, bool) {
//	    if id, ok := requestIDFrom(ctx); ok {
//	        return slog.String("request_id", id), true
//	    }
//	    return slog.Attr{}, false
//	})
//	log.InfoContext(ctx, "order created", "order_id", order.ID)
//
// [NewNope] returns a no-op logger for use as a default.
//
// [NewWithSentry] additionally forwards warnings and errors to Sentry when
// a DSN is configured, degrading to stdout-only logging otherwise.
package logger
