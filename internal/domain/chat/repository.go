package chat

import (
	"context"

	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Repository interface {
	GetRoom(ctx context.Context, id uint) (*models.ChatRoom, error)

	// MatchExists reports whether hostID owns slotID and approved guestID
	// on it.
	MatchExists(ctx context.Context, slotID, hostID, guestID uint) (bool, error)

	// GetOrCreateRoom reports true when the room was inserted by this call.
	GetOrCreateRoom(ctx context.Context, slotID, hostID, guestID uint) (*models.ChatRoom, bool, error)

	// ListMessages returns the full history, oldest first.
	ListMessages(ctx context.Context, roomID uint) ([]models.ChatMessage, error)

	// CreateMessage inserts msg. When a message with the same
	// (room, sender, client token) exists, msg is overwritten with the
	// stored row and false is returned.
	CreateMessage(ctx context.Context, msg *models.ChatMessage) (bool, error)
}

// Broker is the change notification stream for inserted messages.
type Broker interface {
	Publish(ctx context.Context, msg models.ChatMessage) error
	Subscribe(ctx context.Context, roomID uint) (Subscription, error)
}

type Subscription interface {
	// Messages is closed when the subscription ends.
	Messages() <-chan models.ChatMessage
	Close() error
}
