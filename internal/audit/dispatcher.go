package audit

import "log"

const (
	ActionRequestSubmitted  = "request_submitted"
	ActionRequestApproved   = "request_approved"
	ActionRequestRejected   = "request_rejected"
	ActionMatchCreated      = "match_created"
	ActionChatRoomCreated   = "chat_room_created"
	ActionSlotCreated       = "slot_created"
	ActionSlotToggled       = "slot_toggled"
	ActionReminderCompleted = "reminder_completed"
	ActionUserSignedUp      = "user_signed_up"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	writer Writer
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(writer Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.writer.Write(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks; events are dropped when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

// Close blocks until queued events are written. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	<-d.done
}
