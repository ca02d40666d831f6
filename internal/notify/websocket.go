package notify

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	model "service-market/internal/models"
	"service-market/utils"
)

// StatusTransitioner executes status change requests arriving over the
// channel on behalf of the connected user.
type StatusTransitioner interface {
	RequestTransition(serviceID, actorID string, target model.ServiceStatus) (model.Service, error)
}

// WSHandler upgrades HTTP requests into hub subscriptions and routes
// inbound channel messages.
type WSHandler struct {
	hub        *Hub
	transition StatusTransitioner
	upgrader   websocket.Upgrader
}

// NewWSHandler creates a websocket handler bound to a hub.
func NewWSHandler(hub *Hub, transition StatusTransitioner) *WSHandler {
	return &WSHandler{
		hub:        hub,
		transition: transition,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the request and joins the authenticated user's room.
// Identity comes from the auth middleware, never from the client payload.
func (h *WSHandler) Handle(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("failed to upgrade connection", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	client := NewClient(userID, conn)
	sub := h.hub.Subscribe(userID)

	go client.WriteMessages()
	go func() {
		for event := range sub.Events {
			client.SendEvent(event)
		}
	}()
	go func() {
		client.ReadMessages(h.handleMessage)
		h.hub.Unsubscribe(sub)
	}()
}

// handleMessage routes one inbound message based on its type.
func (h *WSHandler) handleMessage(client *Client, raw []byte) {
	if !client.RateLimiter.Allow() {
		utils.Warn("rate limit exceeded", map[string]any{"user_id": client.UserID})
		client.SendEvent(errorEvent("rate limit exceeded"))
		return
	}

	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		client.SendEvent(errorEvent("invalid message format"))
		return
	}

	switch event.Type {
	case EventJoin:
		// The room is joined from the authenticated identity at upgrade
		// time; a join message is a no-op kept for client compatibility.
		utils.Info("client joined", map[string]any{"user_id": client.UserID})
	case EventStatusRequest:
		h.handleStatusRequest(client, event.Data)
	default:
		utils.Warn("unknown message type", map[string]any{"user_id": client.UserID, "type": string(event.Type)})
		client.SendEvent(errorEvent("unknown message type"))
	}
}

// handleStatusRequest applies an inbound status change through the
// booking service; the resulting broadcast reaches both parties via the
// hub, including the requesting client.
func (h *WSHandler) handleStatusRequest(client *Client, data json.RawMessage) {
	var req StatusRequestPayload
	if err := json.Unmarshal(data, &req); err != nil || req.ServiceID == "" {
		client.SendEvent(errorEvent("invalid status request"))
		return
	}

	_, err := h.transition.RequestTransition(req.ServiceID, client.UserID, model.ServiceStatus(req.NewStatus))
	if err != nil {
		utils.Warn("status request rejected", map[string]any{
			"user_id":    client.UserID,
			"service_id": req.ServiceID,
			"error":      err.Error(),
		})
		client.SendEvent(errorEvent(err.Error()))
	}
}

// errorEvent builds an outbound error envelope.
func errorEvent(message string) Event {
	data, _ := json.Marshal(map[string]string{"message": message})
	return Event{Type: EventError, Data: data}
}
