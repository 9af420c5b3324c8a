package match

import (
	"context"

	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Repository interface {
	// ListForUser returns matches where userID is owner or partner, with
	// Slot, Owner and Partner loaded, most recently confirmed first.
	ListForUser(ctx context.Context, userID uint) ([]models.Match, error)
}

// Counterpart returns the profile of the other party in m.
func Counterpart(m *models.Match, userID uint) *models.Profile {
	if m.UserID == userID {
		return m.Partner
	}
	return m.Owner
}
