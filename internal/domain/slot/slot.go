package slot

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

// Column sizes of models.TimeSlot.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxLocationLength    = 200
)

type Draft struct {
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

// NewSlot validates d and builds an active slot owned by ownerID.
func NewSlot(ownerID uint, d Draft) (*models.TimeSlot, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, httperr.ErrBusiness("missing_title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, httperr.ErrBusiness("title_too_long")
	}

	description := strings.TrimSpace(d.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, httperr.ErrBusiness("description_too_long")
	}
	location := strings.TrimSpace(d.Location)
	if utf8.RuneCountInString(location) > MaxLocationLength {
		return nil, httperr.ErrBusiness("location_too_long")
	}

	if d.StartTime.IsZero() || d.EndTime.IsZero() || !d.StartTime.Before(d.EndTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	return &models.TimeSlot{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Location:    location,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		IsActive:    true,
	}, nil
}

func EnsureOwner(s *models.TimeSlot, userID uint) error {
	if s.UserID != userID {
		return httperr.ErrBusiness("not_slot_owner")
	}
	return nil
}
