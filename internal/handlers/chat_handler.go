package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	"github.com/BruksfildServices01/timeslot-matcher/internal/middleware"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
	"github.com/BruksfildServices01/timeslot-matcher/internal/realtime"
	ucChat "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/chat"
)

// ======================================================
// HANDLER
// ======================================================

type ChatHandler struct {
	getOrCreate *ucChat.GetOrCreateRoom
	list        *ucChat.ListMessages
	send        *ucChat.SendMessage
	open        *ucChat.OpenStream
	upgrader    websocket.Upgrader
}

func NewChatHandler(
	getOrCreate *ucChat.GetOrCreateRoom,
	list *ucChat.ListMessages,
	send *ucChat.SendMessage,
	open *ucChat.OpenStream,
	allowedOrigins []string,
) *ChatHandler {
	return &ChatHandler{
		getOrCreate: getOrCreate,
		list:        list,
		send:        send,
		open:        open,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Non-browser clients send no Origin.
				return origin == "" || middleware.OriginAllowed(allowedOrigins, origin)
			},
		},
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GetOrCreateRoomRequest struct {
	SlotID  uint `json:"slot_id" binding:"required"`
	HostID  uint `json:"host_id" binding:"required"`
	GuestID uint `json:"guest_id" binding:"required"`
}

type SendMessageRequest struct {
	Body        string `json:"body"`
	ClientToken string `json:"client_token"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *ChatHandler) GetOrCreateRoom(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	var req GetOrCreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "slot_id, host_id and guest_id are required.")
		return
	}

	room, err := h.getOrCreate.Execute(c.Request.Context(), ucChat.GetOrCreateRoomInput{
		SlotID:  req.SlotID,
		HostID:  req.HostID,
		GuestID: req.GuestID,
		UserID:  s.UserID,
	})
	if err != nil {
		httperr.FromError(c, err, "chat_room_failed")
		return
	}

	httpresp.OK(c, room)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	roomID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	msgs, err := h.list.Execute(c.Request.Context(), roomID, s.UserID)
	if err != nil {
		httperr.FromError(c, err, "chat_list_failed")
		return
	}

	httpresp.List(c, msgs)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	roomID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid message.")
		return
	}

	msg, err := h.send.Execute(c.Request.Context(), ucChat.SendMessageInput{
		RoomID:      roomID,
		SenderID:    s.UserID,
		Body:        req.Body,
		ClientToken: req.ClientToken,
	})
	if err != nil {
		httperr.FromError(c, err, "chat_send_failed")
		return
	}

	httpresp.Created(c, msg)
}

// Stream upgrades to a WebSocket carrying the room history followed by
// every new message.
func (h *ChatHandler) Stream(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	roomID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	stream, err := h.open.Execute(c.Request.Context(), roomID, s.UserID)
	if err != nil {
		httperr.FromError(c, err, "chat_stream_failed")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		_ = stream.Subscription.Close()
		log.Printf("chat: websocket upgrade for room %d: %v", roomID, err)
		return
	}

	sendFn := func(ctx context.Context, body, token string) (*models.ChatMessage, error) {
		return h.send.Execute(ctx, ucChat.SendMessageInput{
			RoomID:      roomID,
			SenderID:    s.UserID,
			Body:        body,
			ClientToken: token,
		})
	}

	realtime.NewClient(conn, s.UserID, stream.Subscription, sendFn).
		Run(c.Request.Context(), stream.History)
}
