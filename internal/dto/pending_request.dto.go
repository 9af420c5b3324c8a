package dto

import "time"

type ProfileSummaryDTO struct {
	ID        uint   `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

type SlotSummaryDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type PendingRequestDTO struct {
	ID        uint              `json:"id"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
	Slot      SlotSummaryDTO    `json:"slot"`
	Requester ProfileSummaryDTO `json:"requester"`
}
