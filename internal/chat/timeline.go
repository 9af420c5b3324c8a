// Package chat keeps the client-side view of a room: server history plus
// optimistic messages that have not been confirmed yet.
package chat

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type Entry struct {
	Message models.ChatMessage `json:"message"`
	Pending bool               `json:"pending"`
}

// Timeline orders entries by creation time. A confirmed message replaces
// the pending entry its sender created with the same client token, and a
// message ID is never shown twice.
type Timeline struct {
	mu        sync.Mutex
	entries   []Entry
	byID      map[uint]struct{}
	byPending map[pendingKey]int
}

type pendingKey struct {
	senderID uint
	token    string
}

func NewTimeline(history []models.ChatMessage) *Timeline {
	t := &Timeline{
		byID:      make(map[uint]struct{}, len(history)),
		byPending: make(map[pendingKey]int),
	}
	for _, m := range history {
		t.apply(m)
	}
	return t
}

// AddPending inserts an unconfirmed message sent by this client.
func (t *Timeline) AddPending(senderID uint, token, body string, at time.Time) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := Entry{
		Message: models.ChatMessage{
			SenderID:    senderID,
			ClientToken: token,
			Body:        body,
			CreatedAt:   at,
		},
		Pending: true,
	}
	t.insert(e)
	return e
}

// Apply merges a confirmed message and reports whether the view changed.
// A message whose ID is already shown still counts as a change when it
// settles a pending entry, as happens when a token is resent.
func (t *Timeline) Apply(msg models.ChatMessage) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.apply(msg)
}

func (t *Timeline) apply(msg models.ChatMessage) (Entry, bool) {
	e := Entry{Message: msg}
	settled := t.dropPending(msg.SenderID, msg.ClientToken)

	if _, seen := t.byID[msg.ID]; seen {
		return e, settled
	}
	t.byID[msg.ID] = struct{}{}

	t.insert(e)
	return e, true
}

// dropPending removes every pending entry for the sender and token.
func (t *Timeline) dropPending(senderID uint, token string) bool {
	if token == "" {
		return false
	}
	key := pendingKey{senderID: senderID, token: token}

	dropped := false
	for {
		i, ok := t.byPending[key]
		if !ok {
			return dropped
		}
		t.remove(i)
		dropped = true
	}
}

func (t *Timeline) insert(e Entry) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Message.CreatedAt.After(e.Message.CreatedAt)
	})

	t.entries = append(t.entries, Entry{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = e
	t.reindex()
}

func (t *Timeline) remove(i int) {
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	t.reindex()
}

func (t *Timeline) reindex() {
	for k := range t.byPending {
		delete(t.byPending, k)
	}
	for i, e := range t.entries {
		if e.Pending && e.Message.ClientToken != "" {
			t.byPending[pendingKey{senderID: e.Message.SenderID, token: e.Message.ClientToken}] = i
		}
	}
}

// Messages returns a copy of the current entries.
func (t *Timeline) Messages() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
