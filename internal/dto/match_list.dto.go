package dto

import "time"

type MatchListDTO struct {
	ID          uint              `json:"id"`
	ConfirmedAt time.Time         `json:"confirmed_at"`
	IsOwner     bool              `json:"is_owner"`
	Slot        SlotSummaryDTO    `json:"slot"`
	Partner     ProfileSummaryDTO `json:"partner"`
}
