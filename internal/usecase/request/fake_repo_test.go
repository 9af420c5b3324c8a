package request

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/request"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type memState struct {
	slots    map[uint]models.TimeSlot
	profiles map[uint]models.Profile
	requests map[uint]models.SlotRequest
	matches  []models.Match
	rooms    []models.ChatRoom
	nextID   uint
}

func (s memState) clone() memState {
	c := memState{
		slots:    make(map[uint]models.TimeSlot, len(s.slots)),
		profiles: s.profiles,
		requests: make(map[uint]models.SlotRequest, len(s.requests)),
		matches:  append([]models.Match(nil), s.matches...),
		rooms:    append([]models.ChatRoom(nil), s.rooms...),
		nextID:   s.nextID,
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	return c
}

// memRepo is an in-memory domain.Repository. WithinTx restores the
// previous state when fn fails.
type memRepo struct {
	state *memState

	createMatchErr error
	clock          time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{
		state: &memState{
			slots:    map[uint]models.TimeSlot{},
			profiles: map[uint]models.Profile{},
			requests: map[uint]models.SlotRequest{},
			nextID:   100,
		},
		clock: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memRepo) id() uint {
	m.state.nextID++
	return m.state.nextID
}

func (m *memRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memRepo) addSlot(id, ownerID uint) {
	m.state.slots[id] = models.TimeSlot{ID: id, UserID: ownerID, Title: "slot", IsActive: true}
}

func (m *memRepo) addProfile(id uint, nickname string) {
	m.state.profiles[id] = models.Profile{ID: id, Nickname: nickname}
}

func (m *memRepo) GetSlot(ctx context.Context, slotID uint) (*models.TimeSlot, error) {
	s, ok := m.state.slots[slotID]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &s, nil
}

func (m *memRepo) ListOwnedSlotIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	for id, s := range m.state.slots {
		if s.UserID == ownerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memRepo) CreateRequest(ctx context.Context, r *models.SlotRequest) error {
	for _, existing := range m.state.requests {
		if existing.SlotID == r.SlotID && existing.RequesterID == r.RequesterID {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	r.ID = m.id()
	r.CreatedAt = m.tick()
	m.state.requests[r.ID] = *r
	return nil
}

func (m *memRepo) ListPendingForSlots(ctx context.Context, slotIDs []uint) ([]models.SlotRequest, error) {
	want := map[uint]bool{}
	for _, id := range slotIDs {
		want[id] = true
	}

	var out []models.SlotRequest
	for _, r := range m.state.requests {
		if !want[r.SlotID] || r.Status != string(domain.StatusPending) {
			continue
		}
		slot := m.state.slots[r.SlotID]
		prof := m.state.profiles[r.RequesterID]
		r.Slot = &slot
		r.Requester = &prof
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) GetRequestForUpdate(ctx context.Context, id uint) (*models.SlotRequest, error) {
	r, ok := m.state.requests[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	slot := m.state.slots[r.SlotID]
	r.Slot = &slot
	return &r, nil
}

func (m *memRepo) MarkDecided(ctx context.Context, id uint, status domain.Status, decidedAt time.Time) (bool, error) {
	r, ok := m.state.requests[id]
	if !ok || r.Status != string(domain.StatusPending) {
		return false, nil
	}
	r.Status = string(status)
	r.DecidedAt = &decidedAt
	m.state.requests[id] = r
	return true, nil
}

func (m *memRepo) CreateMatch(ctx context.Context, match *models.Match) error {
	if m.createMatchErr != nil {
		return m.createMatchErr
	}
	for _, existing := range m.state.matches {
		if existing.RequestID == match.RequestID {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	match.ID = m.id()
	m.state.matches = append(m.state.matches, *match)
	return nil
}

func (m *memRepo) GetOrCreateRoom(ctx context.Context, slotID, hostID, guestID uint) (*models.ChatRoom, bool, error) {
	for _, r := range m.state.rooms {
		if r.SlotID == slotID && r.HostID == hostID && r.GuestID == guestID {
			room := r
			return &room, false, nil
		}
	}
	room := models.ChatRoom{ID: m.id(), SlotID: slotID, HostID: hostID, GuestID: guestID, CreatedAt: m.tick()}
	m.state.rooms = append(m.state.rooms, room)
	return &room, true, nil
}

func (m *memRepo) WithinTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	snapshot := m.state.clone()
	if err := fn(m); err != nil {
		*m.state = snapshot
		return err
	}
	return nil
}

var errBoom = errors.New("boom")

var _ domain.Repository = (*memRepo)(nil)
