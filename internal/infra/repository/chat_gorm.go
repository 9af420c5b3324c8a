package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

func (r *ChatGormRepository) GetRoom(
	ctx context.Context,
	id uint,
) (*models.ChatRoom, error) {

	var room models.ChatRoom
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &room, nil
}

func (r *ChatGormRepository) MatchExists(
	ctx context.Context,
	slotID uint,
	hostID uint,
	guestID uint,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("slot_id = ? AND user_id = ? AND partner_id = ?", slotID, hostID, guestID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ChatGormRepository) GetOrCreateRoom(
	ctx context.Context,
	slotID uint,
	hostID uint,
	guestID uint,
) (*models.ChatRoom, bool, error) {
	return getOrCreateRoom(ctx, r.db, slotID, hostID, guestID)
}

func (r *ChatGormRepository) ListMessages(
	ctx context.Context,
	roomID uint,
) ([]models.ChatMessage, error) {

	var msgs []models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("chat_room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *ChatGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.ChatMessage,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chat_room_id"}, {Name: "sender_id"}, {Name: "client_token"}},
			DoNothing: true,
		}).
		Create(msg)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	var stored models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where(
			"chat_room_id = ? AND sender_id = ? AND client_token = ?",
			msg.ChatRoomID, msg.SenderID, msg.ClientToken,
		).
		First(&stored).Error; err != nil {
		return false, notFound(err)
	}

	*msg = stored
	return false, nil
}

// Compile-time check
var _ domain.Repository = (*ChatGormRepository)(nil)
