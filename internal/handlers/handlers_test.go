package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/middleware"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
	"github.com/BruksfildServices01/timeslot-matcher/internal/session"
	ucSlot "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/slot"
)

type memSlots struct {
	slots []models.TimeSlot
}

func (m *memSlots) CreateSlot(ctx context.Context, s *models.TimeSlot) error {
	s.ID = uint(len(m.slots) + 1)
	m.slots = append(m.slots, *s)
	return nil
}

func (m *memSlots) GetSlot(ctx context.Context, id uint) (*models.TimeSlot, error) {
	for _, s := range m.slots {
		if s.ID == id {
			slot := s
			return &slot, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (m *memSlots) SetActive(ctx context.Context, id uint, active bool) error {
	for i := range m.slots {
		if m.slots[i].ID == id {
			m.slots[i].IsActive = active
			return nil
		}
	}
	return httperr.ErrNotFound
}

func (m *memSlots) ListByOwner(ctx context.Context, ownerID uint) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range m.slots {
		if s.UserID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSlots) ListPublic(ctx context.Context, viewerID uint) ([]models.TimeSlot, error) {
	return nil, nil
}

func (m *memSlots) RequestedSlotIDs(ctx context.Context, requesterID uint) ([]uint, error) {
	return nil, nil
}

// withUser stands in for AuthMiddleware.
func withUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != 0 {
			c.Set(middleware.ContextSession, &session.Session{
				UserID:    userID,
				TokenID:   "test",
				ExpiresAt: time.Now().Add(time.Hour),
			})
		}
		c.Next()
	}
}

func newSlotRouter(repo *memSlots, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewSlotHandler(
		ucSlot.NewCreateSlot(repo, nil),
		ucSlot.NewListMySlots(repo),
		ucSlot.NewListPublicSlots(repo),
		ucSlot.NewSetSlotActive(repo, nil),
		"Asia/Seoul",
	)

	r := gin.New()
	r.Use(withUser(userID))
	r.POST("/slots", h.Create)
	r.GET("/slots/mine", h.ListMine)
	r.PATCH("/slots/:id/active", h.SetActive)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestSlotHandler_RequiresSession(t *testing.T) {
	w := do(newSlotRouter(&memSlots{}, 0), http.MethodPost, "/slots", `{}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", errorCode(t, w))
}

func TestSlotHandler_Create(t *testing.T) {
	repo := &memSlots{}
	r := newSlotRouter(repo, 4)

	w := do(r, http.MethodPost, "/slots", `{
		"title": "Coffee",
		"location": "Seoul",
		"start_time": "2025-06-01 10:00",
		"end_time": "2025-06-01T12:00:00+09:00"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Len(t, repo.slots, 1)
	s := repo.slots[0]
	assert.Equal(t, uint(4), s.UserID)
	assert.True(t, s.IsActive)
	assert.Equal(t, 2*time.Hour, s.EndTime.Sub(s.StartTime))
}

func TestSlotHandler_CreateValidation(t *testing.T) {
	r := newSlotRouter(&memSlots{}, 4)

	w := do(r, http.MethodPost, "/slots", `{"title":"x","start_time":"tomorrow","end_time":"later"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date_or_time", errorCode(t, w))

	w = do(r, http.MethodPost, "/slots", `{"title":"x","start_time":"2025-06-01 12:00","end_time":"2025-06-01 10:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_time_range", errorCode(t, w))
}

func TestSlotHandler_ListMine(t *testing.T) {
	repo := &memSlots{slots: []models.TimeSlot{
		{ID: 1, UserID: 4, Title: "mine"},
		{ID: 2, UserID: 5, Title: "theirs"},
	}}

	w := do(newSlotRouter(repo, 4), http.MethodGet, "/slots/mine", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []models.TimeSlot `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "mine", body.Data[0].Title)
}

func TestSlotHandler_SetActive(t *testing.T) {
	repo := &memSlots{slots: []models.TimeSlot{{ID: 1, UserID: 4, IsActive: true}}}

	w := do(newSlotRouter(repo, 5), http.MethodPatch, "/slots/1/active", `{"is_active":false}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "not_slot_owner", errorCode(t, w))

	r := newSlotRouter(repo, 4)

	w = do(r, http.MethodPatch, "/slots/abc/active", `{"is_active":false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPatch, "/slots/1/active", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPatch, "/slots/1/active", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, repo.slots[0].IsActive)
}

func TestParseDateTime(t *testing.T) {
	got, err := parseDateTime("2025-06-01 09:30", "UTC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), got)

	got, err = parseDateTime("2025-06-01T09:30:00Z", "Asia/Seoul")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)))

	_, err = parseDateTime("06/01/2025", "UTC")
	assert.Error(t, err)
}
