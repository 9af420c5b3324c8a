package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/request"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

const (
	owner = uint(1)
	user1 = uint(2)
	user2 = uint(3)
	slotS = uint(10)
	slotT = uint(11)
)

func setup(t *testing.T) (*memRepo, *SubmitRequest, *ListPendingRequests, *DecideRequest) {
	t.Helper()

	repo := newMemRepo()
	repo.addSlot(slotS, owner)
	repo.addSlot(slotT, owner)
	repo.addProfile(user1, "alice")
	repo.addProfile(user2, "bob")

	return repo,
		NewSubmitRequest(repo, nil),
		NewListPendingRequests(repo),
		NewDecideRequest(repo, nil)
}

func submit(t *testing.T, uc *SubmitRequest, slotID, requesterID uint) *models.SlotRequest {
	t.Helper()

	req, err := uc.Execute(context.Background(), SubmitRequestInput{
		SlotID:      slotID,
		RequesterID: requesterID,
		Message:     "  can I join?  ",
	})
	require.NoError(t, err)
	return req
}

// ======================================================
// SUBMIT
// ======================================================

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	_, uc, _, _ := setup(t)

	req := submit(t, uc, slotS, user1)

	assert.Equal(t, string(domain.StatusPending), req.Status)
	assert.Equal(t, "can I join?", req.Message)
	assert.NotZero(t, req.ID)
}

func TestSubmit_RejectsOwnSlot(t *testing.T) {
	_, uc, _, _ := setup(t)

	_, err := uc.Execute(context.Background(), SubmitRequestInput{SlotID: slotS, RequesterID: owner})
	assert.True(t, httperr.IsBusiness(err, "own_slot"))
}

func TestSubmit_RejectsSecondRequestForSameSlot(t *testing.T) {
	_, uc, _, _ := setup(t)
	submit(t, uc, slotS, user1)

	_, err := uc.Execute(context.Background(), SubmitRequestInput{SlotID: slotS, RequesterID: user1})
	assert.True(t, httperr.IsBusiness(err, "already_requested"))
}

func TestSubmit_UnknownOrInactiveSlot(t *testing.T) {
	repo, uc, _, _ := setup(t)

	_, err := uc.Execute(context.Background(), SubmitRequestInput{SlotID: 999, RequesterID: user1})
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))

	s := repo.state.slots[slotS]
	s.IsActive = false
	repo.state.slots[slotS] = s

	_, err = uc.Execute(context.Background(), SubmitRequestInput{SlotID: slotS, RequesterID: user1})
	assert.True(t, httperr.IsBusiness(err, "slot_inactive"))
}

// ======================================================
// LIST PENDING
// ======================================================

func TestListPending_NewestFirstWithJoins(t *testing.T) {
	_, submitUC, list, _ := setup(t)
	first := submit(t, submitUC, slotS, user1)
	second := submit(t, submitUC, slotT, user2)

	out, err := list.Execute(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, first.ID, out[1].ID)
	assert.Equal(t, "bob", out[0].Requester.Nickname)
	assert.Equal(t, slotT, out[0].Slot.ID)
}

type mockRepo struct {
	mock.Mock
	domain.Repository
}

func (m *mockRepo) ListOwnedSlotIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	args := m.Called(ctx, ownerID)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockRepo) ListPendingForSlots(ctx context.Context, slotIDs []uint) ([]models.SlotRequest, error) {
	args := m.Called(ctx, slotIDs)
	reqs, _ := args.Get(0).([]models.SlotRequest)
	return reqs, args.Error(1)
}

func TestListPending_NoSlotsShortCircuits(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListOwnedSlotIDs", mock.Anything, uint(42)).Return([]uint{}, nil)

	out, err := NewListPendingRequests(repo).Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	repo.AssertNotCalled(t, "ListPendingForSlots", mock.Anything, mock.Anything)
}

// ======================================================
// DECIDE
// ======================================================

func TestDecide_ApproveCreatesMatchAndRoom(t *testing.T) {
	repo, submitUC, list, decide := setup(t)
	r1 := submit(t, submitUC, slotS, user1)

	res, err := decide.Execute(context.Background(), DecideRequestInput{
		RequestID:   r1.ID,
		OwnerID:     owner,
		Decision:    "approved",
		SlotID:      slotS,
		RequesterID: user1,
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", repo.state.requests[r1.ID].Status)
	require.Len(t, repo.state.matches, 1)
	m := repo.state.matches[0]
	assert.Equal(t, slotS, m.SlotID)
	assert.Equal(t, owner, m.UserID)
	assert.Equal(t, user1, m.PartnerID)

	require.Len(t, repo.state.rooms, 1)
	room := repo.state.rooms[0]
	assert.Equal(t, slotS, room.SlotID)
	assert.Equal(t, owner, room.HostID)
	assert.Equal(t, user1, room.GuestID)
	assert.Equal(t, room.ID, res.Room.ID)

	pending, err := list.Execute(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Later get-or-create calls resolve to the room created on approval.
	for i := 0; i < 2; i++ {
		again, created, err := repo.GetOrCreateRoom(context.Background(), slotS, owner, user1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, room.ID, again.ID)
	}
}

func TestDecide_RejectCreatesNothing(t *testing.T) {
	repo, submitUC, list, decide := setup(t)
	r2 := submit(t, submitUC, slotT, user2)

	res, err := decide.Execute(context.Background(), DecideRequestInput{
		RequestID: r2.ID,
		OwnerID:   owner,
		Decision:  "rejected",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Match)
	assert.Nil(t, res.Room)

	assert.Equal(t, "rejected", repo.state.requests[r2.ID].Status)
	assert.Empty(t, repo.state.matches)
	assert.Empty(t, repo.state.rooms)

	pending, err := list.Execute(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDecide_OnlyOnce(t *testing.T) {
	repo, submitUC, _, decide := setup(t)
	r := submit(t, submitUC, slotS, user1)

	_, err := decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: "approved"})
	require.NoError(t, err)

	for _, d := range []string{"approved", "rejected"} {
		_, err := decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: d})
		assert.True(t, httperr.IsBusiness(err, "request_already_decided"), d)
	}

	assert.Equal(t, "approved", repo.state.requests[r.ID].Status)
	assert.Len(t, repo.state.matches, 1)
	assert.Len(t, repo.state.rooms, 1)
}

func TestDecide_Authorization(t *testing.T) {
	_, submitUC, _, decide := setup(t)
	r := submit(t, submitUC, slotS, user1)

	_, err := decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: user2, Decision: "approved"})
	assert.True(t, httperr.IsBusiness(err, "not_slot_owner"))

	_, err = decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: "approved", SlotID: slotT})
	assert.True(t, httperr.IsBusiness(err, "request_mismatch"))

	_, err = decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: "approved", RequesterID: user2})
	assert.True(t, httperr.IsBusiness(err, "request_mismatch"))

	_, err = decide.Execute(context.Background(), DecideRequestInput{RequestID: 999, OwnerID: owner, Decision: "approved"})
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))

	_, err = decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: "maybe"})
	assert.True(t, httperr.IsBusiness(err, "invalid_decision"))
}

func TestDecide_RollsBackWhenMatchInsertFails(t *testing.T) {
	repo, submitUC, list, decide := setup(t)
	r := submit(t, submitUC, slotS, user1)
	repo.createMatchErr = errBoom

	_, err := decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: "approved"})
	assert.ErrorIs(t, err, errBoom)

	assert.Equal(t, "pending", repo.state.requests[r.ID].Status)
	assert.Nil(t, repo.state.requests[r.ID].DecidedAt)
	assert.Empty(t, repo.state.matches)
	assert.Empty(t, repo.state.rooms)

	pending, err := list.Execute(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	repo.createMatchErr = nil
	_, err = decide.Execute(context.Background(), DecideRequestInput{RequestID: r.ID, OwnerID: owner, Decision: "approved"})
	require.NoError(t, err)
	assert.Len(t, repo.state.matches, 1)
}
