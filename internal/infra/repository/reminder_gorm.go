package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/reminder"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) Create(
	ctx context.Context,
	rem *models.Reminder,
) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *ReminderGormRepository) List(
	ctx context.Context,
	userID uint,
	filter domain.Filter,
	today string,
) ([]models.Reminder, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	switch filter {
	case domain.FilterDone:
		q = q.Where("status = ?", string(domain.StatusDone))
	case domain.FilterToday:
		q = q.Where("status <> ? AND date = ?", string(domain.StatusDone), today)
	case domain.FilterImportant:
		q = q.Where("status = ?", string(domain.StatusImportant))
	default:
		q = q.Where("status <> ?", string(domain.StatusDone))
	}

	var out []models.Reminder
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReminderGormRepository) GetForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Reminder, error) {

	var rem models.Reminder
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rem).Error; err != nil {
		return nil, notFound(err)
	}
	return &rem, nil
}

func (r *ReminderGormRepository) SetStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReminderGormRepository)(nil)
