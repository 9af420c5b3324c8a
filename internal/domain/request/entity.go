package request

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

const MaxMessageLength = 500

// ===============================
// Domain Actions
// ===============================

func Decide(r *models.SlotRequest, decision Status, now time.Time) error {
	if err := CanDecide(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(decision)
	r.DecidedAt = &now
	return nil
}

// CanSubmit checks that requester may ask to join slot.
func CanSubmit(slot *models.TimeSlot, requesterID uint) error {
	if slot.UserID == requesterID {
		return httperr.ErrBusiness("own_slot")
	}
	if !slot.IsActive {
		return httperr.ErrBusiness("slot_inactive")
	}
	return nil
}

func NormalizeMessage(msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", httperr.ErrBusiness("message_too_long")
	}
	return msg, nil
}
