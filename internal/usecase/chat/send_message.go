package chat

import (
	"context"
	"log"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

const maxClientTokenLength = 64

type SendMessageInput struct {
	RoomID   uint
	SenderID uint
	Body     string

	// ClientToken makes retries idempotent. Generated when empty.
	ClientToken string
}

type SendMessage struct {
	repo   domain.Repository
	broker domain.Broker
}

func NewSendMessage(
	repo domain.Repository,
	broker domain.Broker,
) *SendMessage {
	return &SendMessage{
		repo:   repo,
		broker: broker,
	}
}

// Execute stores the message and notifies subscribers. A resend with a
// known token returns the stored row without a second notification.
func (uc *SendMessage) Execute(
	ctx context.Context,
	in SendMessageInput,
) (*models.ChatMessage, error) {

	room, err := loadRoomFor(ctx, uc.repo, in.RoomID, in.SenderID)
	if err != nil {
		return nil, err
	}

	body, err := domain.NormalizeBody(in.Body)
	if err != nil {
		return nil, err
	}

	token := in.ClientToken
	if token == "" {
		token = uuid.NewString()
	}
	if len(token) > maxClientTokenLength {
		return nil, httperr.ErrBusiness("invalid_client_token")
	}

	msg := &models.ChatMessage{
		ChatRoomID:  room.ID,
		SenderID:    in.SenderID,
		ClientToken: token,
		Body:        body,
	}

	created, err := uc.repo.CreateMessage(ctx, msg)
	if err != nil {
		return nil, err
	}

	if created && uc.broker != nil {
		if err := uc.broker.Publish(ctx, *msg); err != nil {
			log.Printf("chat: publish message %d in room %d: %v", msg.ID, room.ID, err)
		}
	}

	return msg, nil
}
