package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	ucRequest "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/request"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	submit      *ucRequest.SubmitRequest
	listPending *ucRequest.ListPendingRequests
	decide      *ucRequest.DecideRequest
}

func NewRequestHandler(
	submit *ucRequest.SubmitRequest,
	listPending *ucRequest.ListPendingRequests,
	decide *ucRequest.DecideRequest,
) *RequestHandler {
	return &RequestHandler{
		submit:      submit,
		listPending: listPending,
		decide:      decide,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SubmitSlotRequest struct {
	Message string `json:"message"`
}

type DecisionRequest struct {
	Decision    string `json:"decision" binding:"required"`
	SlotID      uint   `json:"slot_id"`
	RequesterID uint   `json:"requester_id"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *RequestHandler) Submit(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	slotID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req SubmitSlotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request data.")
			return
		}
	}

	created, err := h.submit.Execute(c.Request.Context(), ucRequest.SubmitRequestInput{
		SlotID:      slotID,
		RequesterID: s.UserID,
		Message:     req.Message,
	})
	if err != nil {
		httperr.FromError(c, err, "request_submit_failed")
		return
	}

	httpresp.Created(c, created)
}

func (h *RequestHandler) ListPending(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := h.listPending.Execute(c.Request.Context(), s.UserID)
	if err != nil {
		httperr.FromError(c, err, "request_list_failed")
		return
	}

	httpresp.List(c, out)
}

func (h *RequestHandler) Decide(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	requestID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "decision is required.")
		return
	}

	res, err := h.decide.Execute(c.Request.Context(), ucRequest.DecideRequestInput{
		RequestID:   requestID,
		OwnerID:     s.UserID,
		Decision:    req.Decision,
		SlotID:      req.SlotID,
		RequesterID: req.RequesterID,
	})
	if err != nil {
		httperr.FromError(c, err, "request_decide_failed")
		return
	}

	httpresp.OK(c, res)
}
