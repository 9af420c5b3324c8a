package request

import "github.com/BruksfildServices01/timeslot-matcher/internal/httperr"

// ===============================
// Request Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseDecision accepts only the two terminal statuses.
func ParseDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_decision")
}

// CanDecide allows exactly one transition out of pending.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("request_already_decided")
	}
	return nil
}
