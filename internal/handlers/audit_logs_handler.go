package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader   audit.Reader
	timezone string
}

func NewAuditLogsHandler(reader audit.Reader, timezone string) *AuditLogsHandler {
	return &AuditLogsHandler{
		reader:   reader,
		timezone: timezone,
	}
}

// List returns the caller's own audit trail, newest first. from and to are
// calendar days in the app timezone, both inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	from, ok := dayParam(c, "from", h.timezone)
	if !ok {
		return
	}
	to, ok := dayParam(c, "to", h.timezone)
	if !ok {
		return
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}

	page, limit := pageParams(c)

	logs, total, err := h.reader.List(c.Request.Context(), audit.Filter{
		ActorID: s.UserID,
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		From:    from,
		To:      to,
		Offset:  (page - 1) * limit,
		Limit:   limit,
	})
	if err != nil {
		httperr.FromError(c, err, "audit_list_failed")
		return
	}

	httpresp.Page(c, logs, total, page, limit)
}
