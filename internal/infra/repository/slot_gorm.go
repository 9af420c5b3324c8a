package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/slot"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

func (r *SlotGormRepository) CreateSlot(
	ctx context.Context,
	s *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SlotGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var s models.TimeSlot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SlotGormRepository) SetActive(
	ctx context.Context,
	id uint,
	active bool,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

func (r *SlotGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotGormRepository) ListPublic(
	ctx context.Context,
	viewerID uint,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("user_id <> ? AND is_active = ?", viewerID, true).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotGormRepository) RequestedSlotIDs(
	ctx context.Context,
	requesterID uint,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.SlotRequest{}).
		Where("requester_id = ?", requesterID).
		Pluck("slot_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
