package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func (h *Hub) hasClient(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// A slow consumer with a full Send buffer gets dropped through the
// unregister path. The hub must survive further sends to that user and
// close the client channel exactly once.
func TestSendLocalFullBufferDropsClient(t *testing.T) {
	hub := NewHub(nil, noopLogger{})
	go hub.Run()

	userID := uuid.New()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	client.Send <- []byte("fill")

	hub.register <- client
	waitFor(t, func() bool { return hub.hasClient(userID) }, "client never registered")

	hub.sendLocal(userID, []byte("overflow"))
	waitFor(t, func() bool { return !hub.hasClient(userID) }, "client never unregistered")

	// Sending to the departed user must be a no-op, not a panic.
	hub.sendLocal(userID, []byte("after departure"))

	if msg, ok := <-client.Send; !ok || string(msg) != "fill" {
		t.Fatalf("expected buffered frame to survive, got %q ok=%v", msg, ok)
	}
	if _, ok := <-client.Send; ok {
		t.Fatal("expected Send channel closed after unregister")
	}
}

func TestBroadcastLocalFullBufferDropsClient(t *testing.T) {
	hub := NewHub(nil, noopLogger{})
	go hub.Run()

	slowID := uuid.New()
	slow := &Client{Hub: hub, UserID: slowID, Send: make(chan []byte, 1)}
	slow.Send <- []byte("fill")
	fast := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 16)}

	hub.register <- slow
	hub.register <- fast
	waitFor(t, func() bool { return hub.hasClient(slowID) && hub.hasClient(fast.UserID) }, "clients never registered")

	hub.broadcastLocal([]byte("hello"))
	waitFor(t, func() bool { return !hub.hasClient(slowID) }, "slow client never unregistered")

	if !hub.hasClient(fast.UserID) {
		t.Fatal("fast client should stay registered")
	}
	if msg := <-fast.Send; string(msg) != "hello" {
		t.Fatalf("fast client got %q", msg)
	}
}

func TestSendEventFramesPayload(t *testing.T) {
	hub := NewHub(nil, noopLogger{})
	go hub.Run()

	userID := uuid.New()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- client
	waitFor(t, func() bool { return hub.hasClient(userID) }, "client never registered")

	hub.SendEvent(userID, "chat_message", map[string]string{"body": "hi"})

	var frame struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	select {
	case raw := <-client.Send:
		if err := json.Unmarshal(raw, &frame); err != nil {
			t.Fatalf("frame not JSON: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
	}

	if frame.Type != "chat_message" || frame.Data["body"] != "hi" {
		t.Fatalf("unexpected frame: %+v", frame)
	}
}
