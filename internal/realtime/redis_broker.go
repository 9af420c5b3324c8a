package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

// RedisBroker fans inserted messages out to every API instance through
// one pub/sub channel per room.
type RedisBroker struct {
	rdb *redis.Client
}

func NewRedisBroker(rdb *redis.Client) *RedisBroker {
	return &RedisBroker{rdb: rdb}
}

func roomChannel(roomID uint) string {
	return fmt.Sprintf("chat:room:%d", roomID)
}

func (b *RedisBroker) Publish(ctx context.Context, msg models.ChatMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, roomChannel(msg.ChatRoomID), payload).Err()
}

// Subscribe returns once Redis has confirmed the subscription, so nothing
// published after it returns is missed.
func (b *RedisBroker) Subscribe(ctx context.Context, roomID uint) (domain.Subscription, error) {
	ps := b.rdb.Subscribe(ctx, roomChannel(roomID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	sub := &redisSubscription{
		ps:   ps,
		out:  make(chan models.ChatMessage, 64),
		done: make(chan struct{}),
	}
	go sub.run(roomID)

	return sub, nil
}

type redisSubscription struct {
	ps   *redis.PubSub
	out  chan models.ChatMessage
	done chan struct{}
	once sync.Once
}

func (s *redisSubscription) run(roomID uint) {
	defer close(s.out)

	in := s.ps.Channel()
	for {
		select {
		case <-s.done:
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			msg, err := decodeMessage(m.Payload, roomID)
			if err != nil {
				log.Printf("realtime: dropping payload on %s: %v", m.Channel, err)
				continue
			}

			select {
			case s.out <- msg:
			case <-s.done:
				return
			}
		}
	}
}

func (s *redisSubscription) Messages() <-chan models.ChatMessage {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}

func decodeMessage(payload string, roomID uint) (models.ChatMessage, error) {
	var msg models.ChatMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return msg, err
	}
	if msg.ChatRoomID != roomID {
		return msg, fmt.Errorf("message for room %d on room %d channel", msg.ChatRoomID, roomID)
	}
	return msg, nil
}

// Compile-time check
var _ domain.Broker = (*RedisBroker)(nil)
