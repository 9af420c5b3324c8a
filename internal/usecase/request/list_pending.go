package request

import (
	"context"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/request"
	"github.com/BruksfildServices01/timeslot-matcher/internal/dto"
)

type ListPendingRequests struct {
	repo domain.Repository
}

func NewListPendingRequests(
	repo domain.Repository,
) *ListPendingRequests {
	return &ListPendingRequests{
		repo: repo,
	}
}

// Execute lists pending requests on the owner's slots, newest first.
func (uc *ListPendingRequests) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.PendingRequestDTO, error) {

	slotIDs, err := uc.repo.ListOwnedSlotIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := []dto.PendingRequestDTO{}
	if len(slotIDs) == 0 {
		return out, nil
	}

	reqs, err := uc.repo.ListPendingForSlots(ctx, slotIDs)
	if err != nil {
		return nil, err
	}

	for _, r := range reqs {
		out = append(out, dto.PendingRequestDTO{
			ID:        r.ID,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
			Slot:      dto.SlotSummary(r.Slot),
			Requester: dto.ProfileSummary(r.Requester),
		})
	}

	return out, nil
}
