package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	idlePingInterval = 30 * time.Second
	writeWait        = 10 * time.Second
	sendBuffer       = 16
)

var errClientClosed = errors.New("client connection closed")

// client is one WebSocket connection. Only writeLoop writes to conn.
type client struct {
	conn      *websocket.Conn
	outbox    chan []byte
	done      chan struct{}
	closeOnce sync.Once

	sessionID string
	playerID  string
}

func newClient(conn *websocket.Conn, sessionID string) *client {
	return &client{
		conn:      conn,
		outbox:    make(chan []byte, sendBuffer),
		done:      make(chan struct{}),
		sessionID: sessionID,
	}
}

func (that *client) send(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	select {
	case that.outbox <- message:
		return nil
	case <-that.done:
		return errClientClosed
	}
}

// writeLoop drains the outbox and pings the client after a quiet interval.
func (that *client) writeLoop() error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()

	lastWrite := time.Now()
	ping, err := json.Marshal(Message{Action: actionPing})
	if err != nil {
		return fmt.Errorf("failed to marshal ping: %w", err)
	}

	for {
		select {
		case message := <-that.outbox:
			if err = that.write(message); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < idlePingInterval {
				continue
			}
			if err = that.write(ping); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-that.done:
			return nil
		}
	}
}

func (that *client) write(message []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}
