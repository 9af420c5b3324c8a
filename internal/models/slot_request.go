package models

import "time"

// SlotRequest is a non-owner's ask to join a TimeSlot.
// A requester holds at most one request per slot.
type SlotRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SlotID uint      `gorm:"not null;uniqueIndex:ux_request_slot_requester,priority:1" json:"slot_id"`
	Slot   *TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot,omitempty"`

	RequesterID uint     `gorm:"not null;uniqueIndex:ux_request_slot_requester,priority:2" json:"requester_id"`
	Requester   *Profile `gorm:"foreignKey:RequesterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"requester,omitempty"`

	Message string `gorm:"size:500" json:"message"`
	Status  string `gorm:"size:20;default:'pending';index" json:"status"`

	DecidedAt *time.Time `json:"decided_at"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
