package auditlog

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type ListAuditLogs struct {
	reader audit.Reader
}

func NewListAuditLogs(reader audit.Reader) *ListAuditLogs {
	return &ListAuditLogs{reader: reader}
}

func (uc *ListAuditLogs) Execute(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	return uc.reader.List(ctx, f)
}
