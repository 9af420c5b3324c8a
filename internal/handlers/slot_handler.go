package handlers

import (
	"github.com/gin-gonic/gin"

	domainSlot "github.com/BruksfildServices01/timeslot-matcher/internal/domain/slot"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	ucSlot "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/slot"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	create     *ucSlot.CreateSlot
	listMine   *ucSlot.ListMySlots
	listPublic *ucSlot.ListPublicSlots
	setActive  *ucSlot.SetSlotActive
	timezone   string
}

func NewSlotHandler(
	create *ucSlot.CreateSlot,
	listMine *ucSlot.ListMySlots,
	listPublic *ucSlot.ListPublicSlots,
	setActive *ucSlot.SetSlotActive,
	timezone string,
) *SlotHandler {
	return &SlotHandler{
		create:     create,
		listMine:   listMine,
		listPublic: listPublic,
		setActive:  setActive,
		timezone:   timezone,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

type SetSlotActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot data.")
		return
	}

	start, err := parseDateTime(req.StartTime, h.timezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid start time.")
		return
	}
	end, err := parseDateTime(req.EndTime, h.timezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid end time.")
		return
	}

	slot, err := h.create.Execute(c.Request.Context(), s.UserID, domainSlot.Draft{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		httperr.FromError(c, err, "slot_create_failed")
		return
	}

	httpresp.Created(c, slot)
}

func (h *SlotHandler) ListMine(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	slots, err := h.listMine.Execute(c.Request.Context(), s.UserID)
	if err != nil {
		httperr.FromError(c, err, "slot_list_failed")
		return
	}

	httpresp.List(c, slots)
}

func (h *SlotHandler) ListPublic(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	slots, err := h.listPublic.Execute(c.Request.Context(), s.UserID)
	if err != nil {
		httperr.FromError(c, err, "slot_list_failed")
		return
	}

	httpresp.List(c, slots)
}

func (h *SlotHandler) SetActive(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	slotID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req SetSlotActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "is_active is required.")
		return
	}

	slot, err := h.setActive.Execute(c.Request.Context(), s.UserID, slotID, *req.IsActive)
	if err != nil {
		httperr.FromError(c, err, "slot_update_failed")
		return
	}

	httpresp.OK(c, slot)
}
