package models

import "time"

type Match struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID uint `gorm:"not null;uniqueIndex" json:"request_id"`

	SlotID uint      `gorm:"not null;index" json:"slot_id"`
	Slot   *TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot,omitempty"`

	// UserID is the slot owner, PartnerID the approved requester.
	UserID    uint     `gorm:"not null;index" json:"user_id"`
	Owner     *Profile `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	PartnerID uint     `gorm:"not null;index" json:"partner_id"`
	Partner   *Profile `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`

	ConfirmedAt time.Time `gorm:"index" json:"confirmed_at"`
}
