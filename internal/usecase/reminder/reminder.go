package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/reminder"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
	"github.com/BruksfildServices01/timeslot-matcher/internal/timezone"
)

// ======================================================
// CREATE
// ======================================================

type CreateReminderInput struct {
	UserID    uint
	Date      string
	Content   string
	Important bool
}

type CreateReminder struct {
	repo domain.Repository
}

func NewCreateReminder(repo domain.Repository) *CreateReminder {
	return &CreateReminder{repo: repo}
}

func (uc *CreateReminder) Execute(
	ctx context.Context,
	in CreateReminderInput,
) (*models.Reminder, error) {

	r, err := domain.NewReminder(in.UserID, in.Date, in.Content, in.Important)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ======================================================
// LIST
// ======================================================

type ListReminders struct {
	repo domain.Repository
	tz   string
	now  func() time.Time
}

// NewListReminders resolves the "today" filter in tz.
func NewListReminders(repo domain.Repository, tz string) *ListReminders {
	return &ListReminders{
		repo: repo,
		tz:   tz,
		now:  time.Now,
	}
}

func (uc *ListReminders) Execute(
	ctx context.Context,
	userID uint,
	filter string,
) ([]models.Reminder, error) {

	f, err := domain.ParseFilter(filter)
	if err != nil {
		return nil, err
	}

	today := timezone.DateIn(uc.now(), uc.tz)

	out, err := uc.repo.List(ctx, userID, f, today)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Reminder{}
	}
	return out, nil
}

// ======================================================
// COMPLETE
// ======================================================

type CompleteReminder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReminder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteReminder {
	return &CompleteReminder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteReminder) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) (*models.Reminder, error) {

	r, err := uc.repo.GetForUser(ctx, id, userID)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("reminder_not_found")
	}
	if err != nil {
		return nil, err
	}

	if r.Status == string(domain.StatusDone) {
		return r, nil
	}

	if err := uc.repo.SetStatus(ctx, r.ID, domain.StatusDone); err != nil {
		return nil, err
	}
	r.Status = string(domain.StatusDone)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   audit.ActionReminderCompleted,
		Entity:   "reminder",
		EntityID: &r.ID,
	})

	return r, nil
}
