package profile

import (
	"context"
	"io"

	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Repository interface {
	// CreateAccount stores user and profile atomically; profile.ID is set
	// from the new user.
	CreateAccount(ctx context.Context, user *models.User, profile *models.Profile) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.Profile, error)
	SetAvatarURL(ctx context.Context, userID uint, url string) error
}

// AvatarStore keeps profile images and returns a public URL.
type AvatarStore interface {
	PutAvatar(ctx context.Context, userID uint, img io.Reader) (string, error)
}
