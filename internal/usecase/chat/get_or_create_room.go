package chat

import (
	"context"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type GetOrCreateRoomInput struct {
	SlotID  uint
	HostID  uint
	GuestID uint

	// UserID is the caller; it must be the host or the guest.
	UserID uint
}

type GetOrCreateRoom struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewGetOrCreateRoom(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *GetOrCreateRoom {
	return &GetOrCreateRoom{
		repo:  repo,
		audit: audit,
	}
}

func (uc *GetOrCreateRoom) Execute(
	ctx context.Context,
	in GetOrCreateRoomInput,
) (*models.ChatRoom, error) {

	if in.SlotID == 0 || in.HostID == 0 || in.GuestID == 0 || in.HostID == in.GuestID {
		return nil, httperr.ErrBusiness("invalid_room")
	}
	if in.UserID != in.HostID && in.UserID != in.GuestID {
		return nil, httperr.ErrBusiness("not_room_participant")
	}

	matched, err := uc.repo.MatchExists(ctx, in.SlotID, in.HostID, in.GuestID)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, httperr.ErrBusiness("not_matched")
	}

	room, created, err := uc.repo.GetOrCreateRoom(ctx, in.SlotID, in.HostID, in.GuestID)
	if err != nil {
		return nil, err
	}

	if created {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &in.UserID,
			Action:   audit.ActionChatRoomCreated,
			Entity:   "chat_room",
			EntityID: &room.ID,
		})
	}

	return room, nil
}
