package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
	"github.com/BruksfildServices01/timeslot-matcher/internal/session"
	ucProfile "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/profile"
)

type AuthHandler struct {
	signup  *ucProfile.Signup
	login   *ucProfile.Login
	issuer  *session.Issuer
	revoker session.Revoker
}

func NewAuthHandler(
	signup *ucProfile.Signup,
	login *ucProfile.Login,
	issuer *session.Issuer,
	revoker session.Revoker,
) *AuthHandler {
	return &AuthHandler{
		signup:  signup,
		login:   login,
		issuer:  issuer,
		revoker: revoker,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Nickname string `json:"nickname" form:"nickname" binding:"required"`
	Bio      string `json:"bio" form:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	UserID    uint            `json:"user_id"`
	Profile   *models.Profile `json:"profile,omitempty"`
}

// --------- Handlers ---------

// Signup accepts JSON, or multipart form data with an optional "avatar" file.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid signup data.")
		return
	}

	in := ucProfile.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Bio:      req.Bio,
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if fh, err := c.FormFile("avatar"); err == nil {
			f, err := fh.Open()
			if err != nil {
				httperr.BadRequest(c, "invalid_image", "Could not read avatar.")
				return
			}
			defer f.Close()
			in.Avatar = f
		}
	}

	profile, err := h.signup.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err, "signup_failed")
		return
	}

	token, s, err := h.issuer.Issue(profile.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	httpresp.Created(c, tokenResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt,
		UserID:    profile.ID,
		Profile:   profile,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid login data.")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err, "login_failed")
		return
	}

	token, s, err := h.issuer.Issue(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	httpresp.OK(c, tokenResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt,
		UserID:    user.ID,
	})
}

// Refresh trades a valid token for a new one and revokes the old one.
func (h *AuthHandler) Refresh(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	token, s, err := h.issuer.Issue(current.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	if h.revoker != nil {
		if err := h.revoker.Revoke(c.Request.Context(), current); err != nil {
			log.Printf("refresh: revoke %s: %v", current.TokenID, err)
		}
	}

	httpresp.OK(c, tokenResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt,
		UserID:    s.UserID,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	if h.revoker != nil {
		if err := h.revoker.Revoke(c.Request.Context(), current); err != nil {
			httperr.FromError(c, err, "logout_failed")
			return
		}
	}

	c.Status(http.StatusNoContent)
}
