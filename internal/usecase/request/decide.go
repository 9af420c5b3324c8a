package request

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/request"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type DecideRequestInput struct {
	RequestID uint
	OwnerID   uint
	Decision  string

	// Optional. When set they must match the stored request.
	SlotID      uint
	RequesterID uint
}

type DecideRequestResult struct {
	Request *models.SlotRequest `json:"request"`

	// Set only on approval.
	Match *models.Match    `json:"match,omitempty"`
	Room  *models.ChatRoom `json:"room,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type DecideRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewDecideRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DecideRequest {
	return &DecideRequest{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute records the owner's decision. On approval the Match and the
// ChatRoom are written in the same transaction as the status change.
func (uc *DecideRequest) Execute(
	ctx context.Context,
	in DecideRequestInput,
) (*DecideRequestResult, error) {

	decision, err := domain.ParseDecision(in.Decision)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	res := &DecideRequestResult{}
	roomCreated := false

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Load and authorize
		// --------------------------------------------------
		req, err := tx.GetRequestForUpdate(ctx, in.RequestID)
		if errors.Is(err, httperr.ErrNotFound) {
			return httperr.ErrBusiness("request_not_found")
		}
		if err != nil {
			return err
		}

		if req.Slot == nil || req.Slot.UserID != in.OwnerID {
			return httperr.ErrBusiness("not_slot_owner")
		}
		if (in.SlotID != 0 && in.SlotID != req.SlotID) ||
			(in.RequesterID != 0 && in.RequesterID != req.RequesterID) {
			return httperr.ErrBusiness("request_mismatch")
		}

		if err := domain.Decide(req, decision, now); err != nil {
			return err
		}

		// --------------------------------------------------
		// 2️⃣ Status (only from pending)
		// --------------------------------------------------
		ok, err := tx.MarkDecided(ctx, req.ID, decision, now)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrBusiness("request_already_decided")
		}
		res.Request = req

		if decision != domain.StatusApproved {
			return nil
		}

		// --------------------------------------------------
		// 3️⃣ Match + chat room
		// --------------------------------------------------
		match := &models.Match{
			RequestID:   req.ID,
			SlotID:      req.SlotID,
			UserID:      in.OwnerID,
			PartnerID:   req.RequesterID,
			ConfirmedAt: now,
		}
		if err := tx.CreateMatch(ctx, match); err != nil {
			return err
		}
		res.Match = match

		room, created, err := tx.GetOrCreateRoom(ctx, req.SlotID, in.OwnerID, req.RequesterID)
		if err != nil {
			return err
		}
		res.Room = room
		roomCreated = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Audit (after commit)
	// --------------------------------------------------
	uc.dispatchAudit(in.OwnerID, res, roomCreated)

	return res, nil
}

func (uc *DecideRequest) dispatchAudit(
	ownerID uint,
	res *DecideRequestResult,
	roomCreated bool,
) {
	action := audit.ActionRequestRejected
	if res.Match != nil {
		action = audit.ActionRequestApproved
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &ownerID,
		Action:   action,
		Entity:   "slot_request",
		EntityID: &res.Request.ID,
	})

	if res.Match != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &ownerID,
			Action:   audit.ActionMatchCreated,
			Entity:   "match",
			EntityID: &res.Match.ID,
		})
	}

	if roomCreated {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &ownerID,
			Action:   audit.ActionChatRoomCreated,
			Entity:   "chat_room",
			EntityID: &res.Room.ID,
		})
	}
}
