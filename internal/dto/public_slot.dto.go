package dto

import "time"

type PublicSlotDTO struct {
	ID               uint              `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Location         string            `json:"location"`
	StartTime        time.Time         `json:"start_time"`
	EndTime          time.Time         `json:"end_time"`
	Owner            ProfileSummaryDTO `json:"owner"`
	AlreadyRequested bool              `json:"already_requested"`
}
