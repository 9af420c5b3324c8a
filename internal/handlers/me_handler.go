package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	ucProfile "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/profile"
)

type MeHandler struct {
	getProfile   *ucProfile.GetProfile
	updateAvatar *ucProfile.UpdateAvatar
}

func NewMeHandler(
	getProfile *ucProfile.GetProfile,
	updateAvatar *ucProfile.UpdateAvatar,
) *MeHandler {
	return &MeHandler{
		getProfile:   getProfile,
		updateAvatar: updateAvatar,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.getProfile.Execute(c.Request.Context(), s.UserID)
	if err != nil {
		httperr.FromError(c, err, "profile_load_failed")
		return
	}

	httpresp.OK(c, profile)
}

// UpdateAvatar expects multipart form data with an "avatar" file.
func (h *MeHandler) UpdateAvatar(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Avatar file is required.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read avatar.")
		return
	}
	defer f.Close()

	url, err := h.updateAvatar.Execute(c.Request.Context(), s.UserID, f)
	if err != nil {
		httperr.FromError(c, err, "avatar_upload_failed")
		return
	}

	httpresp.OK(c, gin.H{"avatar_url": url})
}
