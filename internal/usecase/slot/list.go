package slot

import (
	"context"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/slot"
	"github.com/BruksfildServices01/timeslot-matcher/internal/dto"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

// ======================================================
// MINE
// ======================================================

type ListMySlots struct {
	repo domain.Repository
}

func NewListMySlots(repo domain.Repository) *ListMySlots {
	return &ListMySlots{repo: repo}
}

func (uc *ListMySlots) Execute(
	ctx context.Context,
	ownerID uint,
) ([]models.TimeSlot, error) {

	slots, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}
	return slots, nil
}

// ======================================================
// PUBLIC
// ======================================================

type ListPublicSlots struct {
	repo domain.Repository
}

func NewListPublicSlots(repo domain.Repository) *ListPublicSlots {
	return &ListPublicSlots{repo: repo}
}

// Execute lists other users' active slots, flagging the ones the viewer
// already requested.
func (uc *ListPublicSlots) Execute(
	ctx context.Context,
	viewerID uint,
) ([]dto.PublicSlotDTO, error) {

	slots, err := uc.repo.ListPublic(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	requested, err := uc.repo.RequestedSlotIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(requested))
	for _, id := range requested {
		seen[id] = true
	}

	out := make([]dto.PublicSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.PublicSlotDTO{
			ID:               s.ID,
			Title:            s.Title,
			Description:      s.Description,
			Location:         s.Location,
			StartTime:        s.StartTime,
			EndTime:          s.EndTime,
			Owner:            dto.ProfileSummary(s.Owner),
			AlreadyRequested: seen[s.ID],
		})
	}

	return out, nil
}
