package profile

import (
	"context"
	"io"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/profile"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
)

type UpdateAvatar struct {
	repo  domain.Repository
	store domain.AvatarStore
}

// NewUpdateAvatar accepts a nil store; uploads then fail with
// avatar_upload_disabled.
func NewUpdateAvatar(
	repo domain.Repository,
	store domain.AvatarStore,
) *UpdateAvatar {
	return &UpdateAvatar{
		repo:  repo,
		store: store,
	}
}

func (uc *UpdateAvatar) Execute(
	ctx context.Context,
	userID uint,
	img io.Reader,
) (string, error) {

	if uc.store == nil {
		return "", httperr.ErrBusiness("avatar_upload_disabled")
	}

	url, err := uc.store.PutAvatar(ctx, userID, img)
	if err != nil {
		return "", err
	}

	if err := uc.repo.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
