package websocket

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

var (
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrUnknownMessage = errors.New("unknown message action")
	ErrNoSession      = errors.New("no session: create or join one first")
)

// connection is one client socket. Writes are serialized; gorilla allows a single writer.
type connection struct {
	ws      *websocket.Conn
	limiter *rate.Limiter

	writeMutex sync.Mutex

	sessionMutex sync.RWMutex
	sessionID    string
}

func newConnection(ws *websocket.Conn, limiter *rate.Limiter) *connection {
	return &connection{
		ws:      ws,
		limiter: limiter,
	}
}

func (that *connection) SessionID() string {
	that.sessionMutex.RLock()
	defer that.sessionMutex.RUnlock()

	return that.sessionID
}

func (that *connection) setSessionID(id string) {
	that.sessionMutex.Lock()
	defer that.sessionMutex.Unlock()

	that.sessionID = id
}

// resolveSession picks the requested session or falls back to the joined one.
func (that *connection) resolveSession(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	if id := that.SessionID(); id != "" {
		return id, nil
	}

	return "", ErrNoSession
}

func (that *connection) send(action string, payload ResponsePayload) error {
	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if err := that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.ws.WriteJSON(struct {
		Action  string          `json:"action"`
		Payload ResponsePayload `json:"payload"`
	}{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
