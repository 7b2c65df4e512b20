package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	userID, ok := optionalUint(c, "userId")
	if !ok {
		return
	}
	page, ok := optionalInt(c, "page")
	if !ok {
		return
	}
	limit, ok := optionalInt(c, "limit")
	if !ok {
		return
	}

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		UserID: userID,
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date bounds
	// --------------------------------------------------
	if s := c.Query("from"); s != "" {
		from, err := timezone.ParseBound(s, h.loc, false)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		q.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := timezone.ParseBound(s, h.loc, true)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		q.To = &to
	}

	res, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}
