package dto

import "github.com/BruksfildServices01/timeslot-matcher/internal/models"

func ProfileSummary(p *models.Profile) ProfileSummaryDTO {
	if p == nil {
		return ProfileSummaryDTO{}
	}
	return ProfileSummaryDTO{
		ID:        p.ID,
		Nickname:  p.Nickname,
		AvatarURL: p.AvatarURL,
	}
}

func SlotSummary(s *models.TimeSlot) SlotSummaryDTO {
	if s == nil {
		return SlotSummaryDTO{}
	}
	return SlotSummaryDTO{
		ID:        s.ID,
		Title:     s.Title,
		Location:  s.Location,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}
