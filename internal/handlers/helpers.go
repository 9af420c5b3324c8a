package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/middleware"
	"github.com/BruksfildServices01/timeslot-matcher/internal/session"
	"github.com/BruksfildServices01/timeslot-matcher/internal/timezone"
)

// currentUser runs the session guard and writes 401 when it fails.
func currentUser(c *gin.Context) (*session.Session, bool) {
	s := middleware.CurrentSession(c)
	if err := session.Require(s); err != nil {
		httperr.FromError(c, err, "unauthenticated")
		return nil, false
	}
	return s, true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

// parseDateTime accepts RFC 3339 or "YYYY-MM-DD HH:MM" in tz.
func parseDateTime(value, tz string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", value, timezone.Location(tz))
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// pageParams reads ?page= and ?limit=, falling back to the first page of
// defaultPageSize on missing or out of range values.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	return page, limit
}

// dayParam parses an optional ?name=YYYY-MM-DD as midnight in tz.
func dayParam(c *gin.Context, name, tz string) (time.Time, bool) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return time.Time{}, true
	}
	d, err := time.ParseInLocation("2006-01-02", v, timezone.Location(tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid "+name+" date.")
		return time.Time{}, false
	}
	return d, true
}
