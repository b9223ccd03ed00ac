package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.logger.List(c.Request.Context(), c.Query("entity"), limit)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.List(c, logs)
}
