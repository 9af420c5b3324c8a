package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

const MaxBodyLength = 2000

func IsParticipant(room *models.ChatRoom, userID uint) bool {
	return room.HostID == userID || room.GuestID == userID
}

func EnsureParticipant(room *models.ChatRoom, userID uint) error {
	if !IsParticipant(room, userID) {
		return httperr.ErrBusiness("not_room_participant")
	}
	return nil
}

func NormalizeBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", httperr.ErrBusiness("empty_message")
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return "", httperr.ErrBusiness("message_too_long")
	}
	return body, nil
}
