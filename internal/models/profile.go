package models

import "time"

// Profile is the public identity of a user. Its ID is the owning user's ID.
type Profile struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Nickname  string `gorm:"size:8;not null" json:"nickname"`
	Bio       string `gorm:"size:255" json:"bio"`
	AvatarURL string `gorm:"size:500" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
