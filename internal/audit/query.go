package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time

	Page  int
	Limit int
}

// Offset is the row offset of the filter's page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ParseFilter reads list parameters, clamping paging and ignoring
// malformed dates. Dates are YYYY-MM-DD; "to" is inclusive of that day.
func ParseFilter(action, entity, from, to, page, limit string) Filter {
	f := Filter{Action: action, Entity: entity, Page: 1, Limit: defaultPageSize}

	if p, err := strconv.Atoi(page); err == nil && p > 0 {
		f.Page = p
	}
	if l, err := strconv.Atoi(limit); err == nil && l > 0 && l <= maxPageSize {
		f.Limit = l
	}
	if t, err := time.Parse("2006-01-02", from); err == nil {
		f.From = &t
	}
	if t, err := time.Parse("2006-01-02", to); err == nil {
		end := t.Add(24 * time.Hour)
		f.To = &end
	}
	return f
}

type Reader interface {
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}
