package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

// Store persists audit rows.
type Store interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

type Logger struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Logger {
	return &Logger{store: store, now: time.Now}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: l.now().UTC(),
	}

	return l.store.Create(ctx, &entry)
}
