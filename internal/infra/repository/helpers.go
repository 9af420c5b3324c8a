package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

// notFound maps gorm's sentinel to httperr.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound
	}
	return err
}

// getOrCreateRoom relies on ux_chat_room_triple: a losing concurrent insert
// does nothing and the winner's row is read back.
func getOrCreateRoom(
	ctx context.Context,
	db *gorm.DB,
	slotID uint,
	hostID uint,
	guestID uint,
) (*models.ChatRoom, bool, error) {

	var room models.ChatRoom
	err := db.WithContext(ctx).
		Where("slot_id = ? AND host_id = ? AND guest_id = ?", slotID, hostID, guestID).
		First(&room).Error
	if err == nil {
		return &room, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	room = models.ChatRoom{
		SlotID:  slotID,
		HostID:  hostID,
		GuestID: guestID,
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_id"}, {Name: "host_id"}, {Name: "guest_id"}},
			DoNothing: true,
		}).
		Create(&room)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return &room, true, nil
	}

	var existing models.ChatRoom
	if err := db.WithContext(ctx).
		Where("slot_id = ? AND host_id = ? AND guest_id = ?", slotID, hostID, guestID).
		First(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}
