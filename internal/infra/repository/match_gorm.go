package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/match"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type MatchGormRepository struct {
	db *gorm.DB
}

func NewMatchGormRepository(db *gorm.DB) *MatchGormRepository {
	return &MatchGormRepository{db: db}
}

func (r *MatchGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Match, error) {

	var matches []models.Match
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Owner").
		Preload("Partner").
		Where("user_id = ? OR partner_id = ?", userID, userID).
		Order("confirmed_at DESC").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// Compile-time check
var _ domain.Repository = (*MatchGormRepository)(nil)
