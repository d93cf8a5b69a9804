package events

import (
	"context"
	"log/slog"
)

// LogListener returns a listener that records every event at debug level.
func LogListener(logger *slog.Logger) Listener {
	return func(e Event) {
		logger.Log(context.Background(), slog.LevelDebug, "store changed",
			"kind", e.Kind,
			"entity_id", e.EntityID,
			"project_id", e.ProjectID,
			"sequence", e.Sequence)
	}
}
