package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/algoviz/pkg/domain"
)

// LoggingHooks logs every generation event.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			logger.DebugContext(ctx, "generate",
				"algorithm", e.Algorithm,
				"session_id", e.SessionID,
				"steps", e.Steps,
				"failed", e.Failed,
				"duration", e.Duration,
			)
		},
		OnError: func(ctx context.Context, e *domain.GenerateEvent) {
			logger.WarnContext(ctx, "generate failed",
				"algorithm", e.Algorithm,
				"session_id", e.SessionID,
				"err", e.Err,
			)
		},
	}
}

// Combine returns hooks that call each of hooks in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			for _, h := range hooks {
				if h.OnGenerate != nil {
					h.OnGenerate(ctx, e)
				}
			}
		},
		OnError: func(ctx context.Context, e *domain.GenerateEvent) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(ctx, e)
				}
			}
		},
	}
}
