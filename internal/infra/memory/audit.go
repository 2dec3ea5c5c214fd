package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type AuditRepository struct {
	s *Store
}

var (
	_ audit.Store  = (*AuditRepository)(nil)
	_ audit.Reader = (*AuditRepository)(nil)
)

func (r *AuditRepository) Create(_ context.Context, entry *models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = r.s.nextID("audit_logs")
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.s.now()
	}
	r.s.audit = append(r.s.audit, *entry)
	return nil
}

func (r *AuditRepository) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []models.AuditLog
	for _, e := range r.s.audit {
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		if f.Entity != "" && e.Entity != f.Entity {
			continue
		}
		if f.From != nil && e.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !e.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	start := f.Offset()
	if start < 0 || start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := len(matched)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}
