package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	ucReminder "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/reminder"
)

type ReminderHandler struct {
	create   *ucReminder.CreateReminder
	list     *ucReminder.ListReminders
	complete *ucReminder.CompleteReminder
}

func NewReminderHandler(
	create *ucReminder.CreateReminder,
	list *ucReminder.ListReminders,
	complete *ucReminder.CompleteReminder,
) *ReminderHandler {
	return &ReminderHandler{
		create:   create,
		list:     list,
		complete: complete,
	}
}

type CreateReminderRequest struct {
	Date      string `json:"date" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Important bool   `json:"important"`
}

func (h *ReminderHandler) Create(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_reminder_fields", "Date and content are required.")
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReminder.CreateReminderInput{
		UserID:    s.UserID,
		Date:      req.Date,
		Content:   req.Content,
		Important: req.Important,
	})
	if err != nil {
		httperr.FromError(c, err, "reminder_create_failed")
		return
	}

	httpresp.Created(c, r)
}

// List takes ?filter=all|today|important|done (default all).
func (h *ReminderHandler) List(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), s.UserID, c.Query("filter"))
	if err != nil {
		httperr.FromError(c, err, "reminder_list_failed")
		return
	}

	httpresp.List(c, out)
}

func (h *ReminderHandler) Complete(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	r, err := h.complete.Execute(c.Request.Context(), s.UserID, id)
	if err != nil {
		httperr.FromError(c, err, "reminder_update_failed")
		return
	}

	httpresp.OK(c, r)
}
