package profile

import (
	"context"
	"io"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/profile"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
	"github.com/BruksfildServices01/timeslot-matcher/internal/validators"
)

const (
	minPasswordLength = 6
	maxBioLength      = 255
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	Email    string
	Password string
	Nickname string
	Bio      string

	// Avatar is optional.
	Avatar io.Reader
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	repo   domain.Repository
	avatar *UpdateAvatar
	audit  *audit.Dispatcher

	emailDomainOK func(string) bool
}

func NewSignup(
	repo domain.Repository,
	avatar *UpdateAvatar,
	audit *audit.Dispatcher,
) *Signup {
	return &Signup{
		repo:          repo,
		avatar:        avatar,
		audit:         audit,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// Execute creates the user and its profile. An avatar that cannot be
// stored is logged and left empty; it can be set again later.
func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*models.Profile, error) {

	// --------------------------------------------------
	// 1️⃣ Validation
	// --------------------------------------------------
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailSyntaxValid(email) || !uc.emailDomainOK(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrBusiness("weak_password")
	}

	nickname := strings.TrimSpace(in.Nickname)
	if !validators.IsNicknameValid(nickname) {
		return nil, httperr.ErrBusiness("invalid_nickname")
	}

	bio := strings.TrimSpace(in.Bio)
	if len([]rune(bio)) > maxBioLength {
		return nil, httperr.ErrBusiness("bio_too_long")
	}

	// --------------------------------------------------
	// 2️⃣ Account
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	profile := &models.Profile{
		Nickname: nickname,
		Bio:      bio,
	}

	if err := uc.repo.CreateAccount(ctx, user, profile); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("email_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   audit.ActionUserSignedUp,
		Entity:   "user",
		EntityID: &user.ID,
	})

	// --------------------------------------------------
	// 3️⃣ Avatar
	// --------------------------------------------------
	if in.Avatar != nil && uc.avatar != nil {
		url, err := uc.avatar.Execute(ctx, user.ID, in.Avatar)
		if err != nil {
			log.Printf("signup: avatar for user %d: %v", user.ID, err)
		} else {
			profile.AvatarURL = url
		}
	}

	return profile, nil
}
