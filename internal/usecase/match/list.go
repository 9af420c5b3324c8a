package match

import (
	"context"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/match"
	"github.com/BruksfildServices01/timeslot-matcher/internal/dto"
)

type ListMatches struct {
	repo domain.Repository
}

func NewListMatches(repo domain.Repository) *ListMatches {
	return &ListMatches{repo: repo}
}

// Execute lists the user's matches, most recent confirmation first, with
// the other party as Partner.
func (uc *ListMatches) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.MatchListDTO, error) {

	matches, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MatchListDTO, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		out = append(out, dto.MatchListDTO{
			ID:          m.ID,
			ConfirmedAt: m.ConfirmedAt,
			IsOwner:     m.UserID == userID,
			Slot:        dto.SlotSummary(m.Slot),
			Partner:     dto.ProfileSummary(domain.Counterpart(m, userID)),
		})
	}

	return out, nil
}
