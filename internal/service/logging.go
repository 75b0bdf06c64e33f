package service

import (
	"context"
	"log/slog"

	"leadhub/internal/models"
	"leadhub/internal/store"
)

// LogActivity writes an audit row for a completed mutation. A failed write is
// logged and swallowed; it never fails the request that triggered it.
func LogActivity(ctx context.Context, activityStore store.ActivityStore, entry *models.Activity) {
	slog.InfoContext(ctx, "Activity",
		"action", entry.Action,
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID,
	)

	if activityStore == nil {
		return
	}
	if err := activityStore.CreateActivity(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "Failed to create activity", "error", err, "action", entry.Action)
	}
}

func activity(action string, entityType models.EntityType, entityID int64, details map[string]interface{}) *models.Activity {
	id := entityID
	return &models.Activity{
		Action:     action,
		EntityType: entityType,
		EntityID:   &id,
		Details:    details,
	}
}
