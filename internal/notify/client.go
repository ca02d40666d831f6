package notify

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"service-market/utils"
)

// Client is one websocket connection subscribed to a user's room.
type Client struct {
	UserID      string
	Conn        *websocket.Conn
	Send        chan []byte   // Channel for outgoing messages
	RateLimiter *rate.Limiter // Rate limiter to prevent spamming
	closed      bool
	mu          sync.Mutex
}

// NewClient wraps an upgraded connection for a user.
func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID:      userID,
		Conn:        conn,
		Send:        make(chan []byte, subscriberBuffer),
		RateLimiter: rate.NewLimiter(1, 3),
	}
}

// ReadMessages listens for incoming messages from the client until the
// connection drops.
func (c *Client) ReadMessages(handleMessage func(*Client, []byte)) {
	defer func() {
		c.Disconnect()
		utils.Info("websocket connection closed", map[string]any{"user_id": c.UserID})
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}
		handleMessage(c, message)
	}
}

// WriteMessages sends outgoing messages to the client until the send
// channel is closed.
func (c *Client) WriteMessages() {
	defer c.Conn.Close()

	for message := range c.Send {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		c.mu.Unlock()

		if err != nil {
			utils.Warn("failed to write websocket message", map[string]any{"user_id": c.UserID, "error": err.Error()})
			return
		}
	}
}

// SendEvent queues an event for delivery; full buffers drop the event.
func (c *Client) SendEvent(event Event) {
	raw, err := json.Marshal(event)
	if err != nil {
		utils.Error("failed to encode event", map[string]any{"user_id": c.UserID, "error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- raw:
	default:
	}
}

// Disconnect cleans up client resources; safe to call more than once.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
	c.mu.Unlock()

	c.Conn.Close()
}
