package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/request"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *RequestGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		return nil, notFound(err)
	}
	return &slot, nil
}

func (r *RequestGormRepository) ListOwnedSlotIDs(
	ctx context.Context,
	ownerID uint,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// --------------------------------------------------
// Request
// --------------------------------------------------

func (r *RequestGormRepository) CreateRequest(
	ctx context.Context,
	req *models.SlotRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestGormRepository) ListPendingForSlots(
	ctx context.Context,
	slotIDs []uint,
) ([]models.SlotRequest, error) {

	var reqs []models.SlotRequest
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Requester").
		Where("slot_id IN ? AND status = ?", slotIDs, string(domain.StatusPending)).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *RequestGormRepository) GetRequestForUpdate(
	ctx context.Context,
	id uint,
) (*models.SlotRequest, error) {

	var req models.SlotRequest
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, id).Error; err != nil {
		return nil, notFound(err)
	}

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, req.SlotID).Error; err != nil {
		return nil, notFound(err)
	}
	req.Slot = &slot

	return &req, nil
}

func (r *RequestGormRepository) MarkDecided(
	ctx context.Context,
	id uint,
	status domain.Status,
	decidedAt time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.SlotRequest{}).
		Where("id = ? AND status = ?", id, string(domain.StatusPending)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"decided_at": decidedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Match / Chat room
// --------------------------------------------------

func (r *RequestGormRepository) CreateMatch(
	ctx context.Context,
	m *models.Match,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RequestGormRepository) GetOrCreateRoom(
	ctx context.Context,
	slotID uint,
	hostID uint,
	guestID uint,
) (*models.ChatRoom, bool, error) {
	return getOrCreateRoom(ctx, r.db, slotID, hostID, guestID)
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *RequestGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RequestGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*RequestGormRepository)(nil)
