package request

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/request"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitRequestInput struct {
	SlotID      uint
	RequesterID uint
	Message     string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitRequest {
	return &SubmitRequest{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitRequest) Execute(
	ctx context.Context,
	in SubmitRequestInput,
) (*models.SlotRequest, error) {

	// --------------------------------------------------
	// Slot
	// --------------------------------------------------
	slot, err := uc.repo.GetSlot(ctx, in.SlotID)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if err != nil {
		return nil, err
	}

	if err := domain.CanSubmit(slot, in.RequesterID); err != nil {
		return nil, err
	}

	msg, err := domain.NormalizeMessage(in.Message)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Insert (one request per requester and slot)
	// --------------------------------------------------
	req := &models.SlotRequest{
		SlotID:      slot.ID,
		RequesterID: in.RequesterID,
		Message:     msg,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("already_requested")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.RequesterID,
		Action:   audit.ActionRequestSubmitted,
		Entity:   "slot_request",
		EntityID: &req.ID,
		Metadata: map[string]any{"slot_id": slot.ID},
	})

	return req, nil
}
