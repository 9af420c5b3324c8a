package slot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

func TestNewSlot(t *testing.T) {
	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name string
		d    Draft
		code string
	}{
		{"valid", Draft{Title: " Coffee ", StartTime: start, EndTime: start.Add(time.Hour)}, ""},
		{"blank title", Draft{Title: "  ", StartTime: start, EndTime: start.Add(time.Hour)}, "missing_title"},
		{"end before start", Draft{Title: "x", StartTime: start, EndTime: start.Add(-time.Hour)}, "invalid_time_range"},
		{"zero length", Draft{Title: "x", StartTime: start, EndTime: start}, "invalid_time_range"},
		{"missing end", Draft{Title: "x", StartTime: start}, "invalid_time_range"},
		{"title at limit", Draft{Title: strings.Repeat("가", MaxTitleLength) + " ", StartTime: start, EndTime: end}, ""},
		{"title too long", Draft{Title: strings.Repeat("가", MaxTitleLength+1), StartTime: start, EndTime: end}, "title_too_long"},
		{"description too long", Draft{Title: "x", Description: strings.Repeat("d", MaxDescriptionLength+1), StartTime: start, EndTime: end}, "description_too_long"},
		{"location too long", Draft{Title: "x", Location: strings.Repeat("l", MaxLocationLength+1), StartTime: start, EndTime: end}, "location_too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSlot(3, tt.d)
			if tt.code != "" {
				assert.True(t, httperr.IsBusiness(err, tt.code))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.d.Title), s.Title)
			assert.Equal(t, uint(3), s.UserID)
			assert.True(t, s.IsActive)
		})
	}
}

func TestEnsureOwner(t *testing.T) {
	s := &models.TimeSlot{UserID: 1}
	assert.NoError(t, EnsureOwner(s, 1))
	assert.True(t, httperr.IsBusiness(EnsureOwner(s, 2), "not_slot_owner"))
}
