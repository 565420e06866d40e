package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/verrdonm/videochat/internal/core/domain"
)

// Client adapts a gorilla websocket connection to port.Client. The service
// layer serializes Send calls; Ping rides on a control frame, which gorilla
// allows concurrently with data writes.
type Client struct {
	conn      *websocket.Conn
	writeWait time.Duration
}

func NewClient(conn *websocket.Conn, writeWait time.Duration) *Client {
	return &Client{conn: conn, writeWait: writeWait}
}

func (c *Client) Send(msg domain.Message) error {
	data, err := msg.Encode()
	if err != nil {
		return err
	}
	c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Ping sends a keepalive control frame.
func (c *Client) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeWait))
}

func (c *Client) Close() error {
	return c.conn.Close()
}
