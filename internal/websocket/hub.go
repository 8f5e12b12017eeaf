package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"ai-salesclone-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const statusChannel = "clone_status_events"

// statusMessage is the frame pushed to dashboard connections whenever a
// clone changes state.
type statusMessage struct {
	Type      string `json:"type"`
	CloneId   string `json:"clone_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Hub fans clone status updates out to every connection a user has open.
// With redis attached, updates also reach users connected to other
// instances.
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

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
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyCloneStatus implements the status notifier used by the clone
// service. Invalid user ids are dropped silently.
func (h *Hub) NotifyCloneStatus(userID string, cloneID string, status string) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	data, _ := json.Marshal(statusMessage{
		Type:      "clone_status",
		CloneId:   cloneID,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	h.sendLocal(uid, data)

	// Other instances pick it up through redis for users connected there
	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"target_user_id": userID,
			"message":        json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), statusChannel, payload)
	}
}

func (h *Hub) sendLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, found := h.clients[userID]
	h.mu.RUnlock()

	if !found {
		return
	}
	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"user_id": userID})
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, statusChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		h.sendLocal(uid, payload.Message)
	}
}
