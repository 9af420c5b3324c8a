package chat

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

func loadRoomFor(
	ctx context.Context,
	repo domain.Repository,
	roomID uint,
	userID uint,
) (*models.ChatRoom, error) {

	room, err := repo.GetRoom(ctx, roomID)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("room_not_found")
	}
	if err != nil {
		return nil, err
	}

	if err := domain.EnsureParticipant(room, userID); err != nil {
		return nil, err
	}
	return room, nil
}
