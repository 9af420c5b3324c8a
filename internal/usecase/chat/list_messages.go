package chat

import (
	"context"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

// Execute returns the full room history, oldest first.
func (uc *ListMessages) Execute(
	ctx context.Context,
	roomID uint,
	userID uint,
) ([]models.ChatMessage, error) {

	if _, err := loadRoomFor(ctx, uc.repo, roomID, userID); err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	return msgs, nil
}
