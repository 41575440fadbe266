package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"tutorhive-be/internal/model"
	"tutorhive-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Hub struct {
	// Registered clients map: UserID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) sendLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, found := h.clients[userID]
	h.mu.RUnlock()
	if !found {
		return
	}
	// The unregister branch in Run is the only place that closes Send;
	// closing here too would double-close when Run processes the client.
	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"user_id": userID})
			h.unregister <- client
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	var stale []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stale = append(stale, client)
			}
		}
	}
	h.mu.RUnlock()

	// Queued after releasing the lock: Run needs it to process the
	// unregister.
	for _, client := range stale {
		h.unregister <- client
	}
}

// publishToCluster hands the frame to other instances via Redis pub/sub.
// target "*" means broadcast.
func (h *Hub) publishToCluster(target string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload := map[string]interface{}{
		"target_user_id": target,
		"message":        data,
	}
	jsonPayload, _ := json.Marshal(payload)
	h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
}

// Broadcast sends a notification to ALL connected clients.
func (h *Hub) Broadcast(notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.broadcastLocal(data)
	h.publishToCluster("*", data)
}

// Send delivers a notification to every device of one user.
// Implements service.NotificationDelivery.
func (h *Hub) Send(userID uuid.UUID, notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.sendLocal(userID, data)
	// Publish regardless of local delivery; the user may have devices on
	// other instances.
	h.publishToCluster(userID.String(), data)
}

// SendEvent pushes an arbitrary typed frame to one user, used for chat
// message delivery.
func (h *Hub) SendEvent(userID uuid.UUID, frameType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": frameType,
		"data": payload,
	})

	h.sendLocal(userID, data)
	h.publishToCluster(userID.String(), data)
}

// subscribeToRedis routes frames published by other instances to the
// locally connected clients.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			h.broadcastLocal(payload.Message)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}
		h.sendLocal(uid, payload.Message)
	}
}
