package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/profile"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) CreateAccount(
	ctx context.Context,
	user *models.User,
	profile *models.Profile,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}

		profile.ID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *ProfileGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *ProfileGormRepository) GetProfile(
	ctx context.Context,
	userID uint,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProfileGormRepository) SetAvatarURL(
	ctx context.Context,
	userID uint,
	url string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("avatar_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ProfileGormRepository)(nil)
