package request

import (
	"context"
	"time"

	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Repository interface {
	// -------- Slot --------
	GetSlot(ctx context.Context, slotID uint) (*models.TimeSlot, error)
	ListOwnedSlotIDs(ctx context.Context, ownerID uint) ([]uint, error)

	// -------- Request --------
	CreateRequest(ctx context.Context, r *models.SlotRequest) error

	// ListPendingForSlots returns pending requests with Slot and Requester
	// loaded, most recent first.
	ListPendingForSlots(ctx context.Context, slotIDs []uint) ([]models.SlotRequest, error)

	// GetRequestForUpdate loads the request with its Slot, locking the row
	// when running inside a transaction.
	GetRequestForUpdate(ctx context.Context, id uint) (*models.SlotRequest, error)

	// MarkDecided moves a pending request to status. It reports false when
	// the request was no longer pending.
	MarkDecided(ctx context.Context, id uint, status Status, decidedAt time.Time) (bool, error)

	// -------- Side effects of approval --------
	CreateMatch(ctx context.Context, m *models.Match) error
	GetOrCreateRoom(ctx context.Context, slotID, hostID, guestID uint) (*models.ChatRoom, bool, error)

	// WithinTx runs fn against a repository bound to one transaction.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error
}
