package chat

import (
	"context"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Stream struct {
	Room         *models.ChatRoom
	History      []models.ChatMessage
	Subscription domain.Subscription
}

type OpenStream struct {
	repo   domain.Repository
	broker domain.Broker
}

func NewOpenStream(
	repo domain.Repository,
	broker domain.Broker,
) *OpenStream {
	return &OpenStream{
		repo:   repo,
		broker: broker,
	}
}

// Execute subscribes before loading history so no insert falls between
// the two. Messages present in both are deduplicated by the reader.
func (uc *OpenStream) Execute(
	ctx context.Context,
	roomID uint,
	userID uint,
) (*Stream, error) {

	room, err := loadRoomFor(ctx, uc.repo, roomID, userID)
	if err != nil {
		return nil, err
	}

	sub, err := uc.broker.Subscribe(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	history, err := uc.repo.ListMessages(ctx, room.ID)
	if err != nil {
		_ = sub.Close()
		return nil, err
	}

	return &Stream{
		Room:         room,
		History:      history,
		Subscription: sub,
	}, nil
}
