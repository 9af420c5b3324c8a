package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type fakeAuditReader struct {
	got   audit.Filter
	logs  []models.AuditLog
	total int64
}

func (f *fakeAuditReader) List(ctx context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	f.got = filter
	return f.logs, f.total, nil
}

func newAuditRouter(reader audit.Reader, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(withUser(userID))
	r.GET("/audit-logs", NewAuditLogsHandler(reader, "UTC").List)
	return r
}

func TestAuditLogsHandler_ScopesAndPages(t *testing.T) {
	reader := &fakeAuditReader{
		logs:  []models.AuditLog{{ID: 9, Action: audit.ActionRequestApproved}},
		total: 21,
	}

	w := do(newAuditRouter(reader, 4), http.MethodGet,
		"/audit-logs?action=request_approved&from=2025-06-01&to=2025-06-02&page=3&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, uint(4), reader.got.ActorID)
	assert.Equal(t, audit.ActionRequestApproved, reader.got.Action)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), reader.got.From)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), reader.got.To)
	assert.Equal(t, 20, reader.got.Offset)
	assert.Equal(t, 10, reader.got.Limit)

	var body struct {
		Data  []models.AuditLog `json:"data"`
		Total int64             `json:"total"`
		Page  int               `json:"page"`
		Limit int               `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(21), body.Total)
	assert.Equal(t, 3, body.Page)
	require.Len(t, body.Data, 1)
	assert.Equal(t, uint(9), body.Data[0].ID)
}

func TestAuditLogsHandler_Defaults(t *testing.T) {
	reader := &fakeAuditReader{}

	w := do(newAuditRouter(reader, 4), http.MethodGet, "/audit-logs?page=-2&limit=5000", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 0, reader.got.Offset)
	assert.Equal(t, defaultPageSize, reader.got.Limit)
	assert.True(t, reader.got.From.IsZero())
	assert.True(t, reader.got.To.IsZero())
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":50}`, w.Body.String())
}

func TestAuditLogsHandler_RejectsBadDates(t *testing.T) {
	w := do(newAuditRouter(&fakeAuditReader{}, 4), http.MethodGet, "/audit-logs?from=01/06/2025", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", errorCode(t, w))
}

func TestAuditLogsHandler_RequiresSession(t *testing.T) {
	w := do(newAuditRouter(&fakeAuditReader{}, 0), http.MethodGet, "/audit-logs", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
