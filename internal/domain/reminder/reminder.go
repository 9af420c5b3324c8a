package reminder

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Status string

const (
	StatusNormal    Status = "normal"
	StatusImportant Status = "important"
	StatusDone      Status = "done"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterToday     Filter = "today"
	FilterImportant Filter = "important"
	FilterDone      Filter = "done"
)

const DateLayout = "2006-01-02"

const MaxContentLength = 500

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch f := Filter(strings.ToLower(s)); f {
	case FilterAll, FilterToday, FilterImportant, FilterDone:
		return f, nil
	}
	return "", httperr.ErrBusiness("invalid_filter")
}

func NewReminder(userID uint, date, content string, important bool) (*models.Reminder, error) {
	date = strings.TrimSpace(date)
	content = strings.TrimSpace(content)
	if date == "" || content == "" {
		return nil, httperr.ErrBusiness("missing_reminder_fields")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, httperr.ErrBusiness("content_too_long")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	status := StatusNormal
	if important {
		status = StatusImportant
	}

	return &models.Reminder{
		UserID:  userID,
		Date:    date,
		Content: content,
		Status:  string(status),
	}, nil
}

type Repository interface {
	Create(ctx context.Context, r *models.Reminder) error

	// List orders by date ascending. today is only read for FilterToday.
	List(ctx context.Context, userID uint, filter Filter, today string) ([]models.Reminder, error)

	GetForUser(ctx context.Context, id, userID uint) (*models.Reminder, error)
	SetStatus(ctx context.Context, id uint, status Status) error
}
