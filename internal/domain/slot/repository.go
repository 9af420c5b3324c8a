package slot

import (
	"context"

	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Repository interface {
	CreateSlot(ctx context.Context, s *models.TimeSlot) error
	GetSlot(ctx context.Context, id uint) (*models.TimeSlot, error)
	SetActive(ctx context.Context, id uint, active bool) error

	// ListByOwner orders by start time ascending.
	ListByOwner(ctx context.Context, ownerID uint) ([]models.TimeSlot, error)

	// ListPublic returns active slots not owned by viewerID, with Owner
	// loaded, ordered by start time ascending.
	ListPublic(ctx context.Context, viewerID uint) ([]models.TimeSlot, error)

	RequestedSlotIDs(ctx context.Context, requesterID uint) ([]uint, error)
}
