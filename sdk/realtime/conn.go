package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	maxFrameSize = 65536
)

// Conn is a live websocket connection to the realtime endpoint.
type Conn struct {
	conn *websocket.Conn
	send chan *Envelope
	done chan struct{}

	closeOnce sync.Once
}

func newConn(conn *websocket.Conn) *Conn {
	return &Conn{
		conn: conn,
		send: make(chan *Envelope, 256),
		done: make(chan struct{}),
	}
}

// Run drives the read and write pumps until the connection fails or ctx is
// canceled. handler receives every server event in order.
func (c *Conn) Run(ctx context.Context, handler func(ev *Envelope)) error {
	errChan := make(chan error, 2)

	go func() {
		errChan <- c.writePump(ctx)
	}()
	go func() {
		errChan <- c.readPump(ctx, handler)
	}()

	err := <-errChan
	c.Close()
	return err
}

// Close tears down the connection. Safe to call multiple times.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Conn) readPump(ctx context.Context, handler func(ev *Envelope)) error {
	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		var ev Envelope
		if err := json.Unmarshal(raw, &ev); err != nil {
			continue
		}
		if handler != nil {
			handler(&ev)
		}
	}
}

func (c *Conn) writePump(ctx context.Context) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case ev := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				return fmt.Errorf("write message: %w", err)
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("write ping: %w", err)
			}
		}
	}
}

func (c *Conn) enqueue(opType string, data any) error {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", opType, err)
		}
		raw = b
	}

	ev := &Envelope{
		Type:      opType,
		Timestamp: time.Now().Unix(),
		Data:      raw,
	}

	select {
	case c.send <- ev:
		return nil
	case <-c.done:
		return fmt.Errorf("connection closed")
	}
}

// SendMessage sends a chat message to another user.
func (c *Conn) SendMessage(recipientID uint, content string) error {
	return c.enqueue(OpSendMessage, map[string]any{
		"recipient_id": recipientID,
		"content":      content,
	})
}

// MarkMessagesRead marks all messages in a conversation as read.
func (c *Conn) MarkMessagesRead(conversationID uint) error {
	return c.enqueue(OpMarkMessagesRead, map[string]any{
		"conversation_id": conversationID,
	})
}

// GetConversations requests the conversation list; the result arrives as an
// EventConversations frame.
func (c *Conn) GetConversations() error {
	return c.enqueue(OpGetConversations, nil)
}

// GetMessages requests a page of a conversation's history; the result arrives
// as an EventMessages frame.
func (c *Conn) GetMessages(conversationID uint, limit, offset int) error {
	return c.enqueue(OpGetMessages, map[string]any{
		"conversation_id": conversationID,
		"limit":           limit,
		"offset":          offset,
	})
}

// JoinConversation marks the conversation active; the server marks pending
// messages read.
func (c *Conn) JoinConversation(conversationID uint) error {
	return c.enqueue(OpJoinConversation, map[string]any{
		"conversation_id": conversationID,
	})
}

// LeaveConversation marks the conversation inactive.
func (c *Conn) LeaveConversation(conversationID uint) error {
	return c.enqueue(OpLeaveConversation, map[string]any{
		"conversation_id": conversationID,
	})
}

// StartTyping notifies the counterpart that the user started typing.
func (c *Conn) StartTyping(recipientID uint) error {
	return c.enqueue(OpStartTyping, map[string]any{
		"recipient_id": recipientID,
	})
}

// StopTyping notifies the counterpart that the user stopped typing.
func (c *Conn) StopTyping(recipientID uint) error {
	return c.enqueue(OpStopTyping, map[string]any{
		"recipient_id": recipientID,
	})
}
