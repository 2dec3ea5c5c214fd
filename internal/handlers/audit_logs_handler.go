package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/auditlog"
)

type AuditLogsHandler struct {
	list *auditlog.ListAuditLogs
}

func NewAuditLogsHandler(list *auditlog.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List supports action, entity, from, to (YYYY-MM-DD), page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.ParseFilter(
		c.Query("action"),
		c.Query("entity"),
		c.Query("from"),
		c.Query("to"),
		c.Query("page"),
		c.Query("limit"),
	)

	logs, total, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.AuditLogPageDTO{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	})
}
