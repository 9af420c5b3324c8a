package models

import "time"

type ChatMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ChatRoomID uint `gorm:"not null;index:idx_room_created,priority:1;uniqueIndex:ux_message_client_token,priority:1" json:"chat_room_id"`
	SenderID   uint `gorm:"not null;uniqueIndex:ux_message_client_token,priority:2" json:"sender_id"`

	// ClientToken is generated by the sender and makes resends idempotent.
	ClientToken string `gorm:"size:64;not null;uniqueIndex:ux_message_client_token,priority:3" json:"client_token"`

	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `gorm:"index:idx_room_created,priority:2" json:"created_at"`
}
