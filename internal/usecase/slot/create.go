package slot

import (
	"context"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/slot"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type CreateSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	ownerID uint,
	d domain.Draft,
) (*models.TimeSlot, error) {

	s, err := domain.NewSlot(ownerID, d)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateSlot(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   audit.ActionSlotCreated,
		Entity:   "time_slot",
		EntityID: &s.ID,
	})

	return s, nil
}
