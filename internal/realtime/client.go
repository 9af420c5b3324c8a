package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/timeslot-matcher/internal/chat"
	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/chat"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 256
)

const (
	FrameHistory = "history"
	FrameMessage = "message"
	FramePending = "pending"
	FrameError   = "error"
	FrameSend    = "send"
)

// Frame is the JSON envelope exchanged on the socket.
type Frame struct {
	Type        string               `json:"type"`
	Messages    []models.ChatMessage `json:"messages,omitempty"`
	Message     *models.ChatMessage  `json:"message,omitempty"`
	Body        string               `json:"body,omitempty"`
	ClientToken string               `json:"client_token,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// SendFunc stores a message for the connected user and returns the
// persisted row.
type SendFunc func(ctx context.Context, body, clientToken string) (*models.ChatMessage, error)

// Client serves one websocket connection bound to a room.
type Client struct {
	conn   *websocket.Conn
	userID uint
	sub    domain.Subscription
	sendFn SendFunc

	timeline  *chat.Timeline
	send      chan Frame
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func NewClient(
	conn *websocket.Conn,
	userID uint,
	sub domain.Subscription,
	sendFn SendFunc,
) *Client {
	return &Client{
		conn:   conn,
		userID: userID,
		sub:    sub,
		sendFn: sendFn,
		send:   make(chan Frame, sendBuffer),
	}
}

// Run writes the history frame, then streams until the socket or the
// subscription ends. It blocks and always closes the subscription.
func (c *Client) Run(ctx context.Context, history []models.ChatMessage) {
	ctx, c.cancel = context.WithCancel(ctx)
	defer c.cancel()
	defer c.sub.Close()

	c.timeline = chat.NewTimeline(history)

	done := make(chan struct{})
	go func() {
		c.writePump(ctx)
		close(done)
	}()

	c.enqueue(ctx, Frame{Type: FrameHistory, Messages: c.confirmed()})

	go c.forward(ctx)
	c.readPump(ctx)

	c.cancel()
	<-done
}

func (c *Client) confirmed() []models.ChatMessage {
	entries := c.timeline.Messages()
	out := make([]models.ChatMessage, 0, len(entries))
	for _, e := range entries {
		if !e.Pending {
			out = append(out, e.Message)
		}
	}
	return out
}

func (c *Client) enqueue(ctx context.Context, f Frame) {
	select {
	case c.send <- f:
	case <-ctx.Done():
	}
}

// forward relays broker messages the timeline has not seen yet.
func (c *Client) forward(ctx context.Context) {
	defer c.cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.sub.Messages():
			if !ok {
				return
			}
			c.deliver(ctx, msg)
		}
	}
}

func (c *Client) deliver(ctx context.Context, msg models.ChatMessage) {
	e, changed := c.timeline.Apply(msg)
	if !changed {
		return
	}
	m := e.Message
	c.enqueue(ctx, Frame{Type: FrameMessage, Message: &m})
}

func (c *Client) readPump(ctx context.Context) {
	defer c.closeConn()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("realtime: read error for user %d: %v", c.userID, err)
			}
			return
		}

		var in Frame
		if err := json.Unmarshal(data, &in); err != nil || in.Type != FrameSend {
			c.enqueue(ctx, Frame{Type: FrameError, Error: "invalid_frame"})
			continue
		}

		c.handleSend(ctx, in)
	}
}

func (c *Client) handleSend(ctx context.Context, in Frame) {
	token := in.ClientToken
	if token == "" {
		token = uuid.NewString()
	}

	pending := c.timeline.AddPending(c.userID, token, in.Body, time.Now())
	c.enqueue(ctx, Frame{Type: FramePending, Message: &pending.Message, ClientToken: token})

	msg, err := c.sendFn(ctx, in.Body, token)
	if err != nil {
		code, ok := httperr.AsBusiness(err)
		if !ok {
			log.Printf("realtime: send failed for user %d: %v", c.userID, err)
			code = "internal_error"
		}
		c.enqueue(ctx, Frame{Type: FrameError, Error: code, ClientToken: token})
		return
	}

	c.deliver(ctx, *msg)
}

func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.closeConn()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case f := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(f); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) closeConn() {
	c.closeOnce.Do(func() {
		c.conn.Close()
	})
}
