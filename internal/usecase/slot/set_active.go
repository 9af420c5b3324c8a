package slot

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/slot"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type SetSlotActive struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetSlotActive(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetSlotActive {
	return &SetSlotActive{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetSlotActive) Execute(
	ctx context.Context,
	ownerID uint,
	slotID uint,
	active bool,
) (*models.TimeSlot, error) {

	s, err := uc.repo.GetSlot(ctx, slotID)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if err != nil {
		return nil, err
	}

	if err := domain.EnsureOwner(s, ownerID); err != nil {
		return nil, err
	}

	if s.IsActive == active {
		return s, nil
	}

	if err := uc.repo.SetActive(ctx, s.ID, active); err != nil {
		return nil, err
	}
	s.IsActive = active

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   audit.ActionSlotToggled,
		Entity:   "time_slot",
		EntityID: &s.ID,
		Metadata: map[string]any{"is_active": active},
	})

	return s, nil
}
