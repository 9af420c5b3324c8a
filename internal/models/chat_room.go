package models

import "time"

// ChatRoom is unique per (slot, host, guest).
type ChatRoom struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SlotID  uint      `gorm:"not null;uniqueIndex:ux_chat_room_triple,priority:1" json:"slot_id"`
	Slot    *TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	HostID  uint      `gorm:"not null;uniqueIndex:ux_chat_room_triple,priority:2;index" json:"host_id"`
	GuestID uint      `gorm:"not null;uniqueIndex:ux_chat_room_triple,priority:3;index" json:"guest_id"`

	CreatedAt time.Time `json:"created_at"`
}
