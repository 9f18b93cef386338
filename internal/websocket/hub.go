package websocket

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"hireflow-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub accumulates streaming recognizer output per interview session. The
// browser runs a low-latency incremental recognizer during audio capture
// and streams its results here; "final" segments are buffered until the
// session's next advance call flushes them as the incremental transcript
// candidate.
type Hub struct {
	// Registered capture clients per session (a session can reconnect).
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Accumulated "final" recognizer segments per session.
	buffers   map[string]*captureBuffer
	buffersMu sync.Mutex

	// Redis connection for cross-instance fanout: the instance holding
	// the websocket may not be the one serving the advance call.
	rdb *redis.Client

	logger logger.ILogger
}

type captureBuffer struct {
	finals     []string
	lastAppend time.Time
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		buffers:    make(map[string]*captureBuffer),
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
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("CaptureHub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// AppendFinal buffers one settled recognizer segment for the session and
// fans it out to other instances.
func (h *Hub) AppendFinal(sessionID, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	h.appendLocal(sessionID, text)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]string{
			"session_id": sessionID,
			"text":       text,
		})
		h.rdb.Publish(context.Background(), "capture_events", payload)
	}
}

func (h *Hub) appendLocal(sessionID, text string) {
	h.buffersMu.Lock()
	defer h.buffersMu.Unlock()
	buf, ok := h.buffers[sessionID]
	if !ok {
		buf = &captureBuffer{}
		h.buffers[sessionID] = buf
	}
	buf.finals = append(buf.finals, text)
	buf.lastAppend = time.Now()
}

// StopAndFlush waits out the settle grace period so a trailing partial
// still in flight can land, then drains the session's accumulated
// incremental transcript. Without the wait the tail of an answer is lost.
// Sessions with no capture activity skip the wait; text-only advances
// must not pay the settle latency.
func (h *Hub) StopAndFlush(sessionID string, grace time.Duration) string {
	if grace > 0 && h.hasCapture(sessionID) {
		time.Sleep(grace)
	}

	h.buffersMu.Lock()
	defer h.buffersMu.Unlock()
	buf, ok := h.buffers[sessionID]
	if !ok {
		return ""
	}
	delete(h.buffers, sessionID)
	return strings.Join(buf.finals, " ")
}

// hasCapture reports whether the session has buffered segments or a
// connected capture client that could still deliver one.
func (h *Hub) hasCapture(sessionID string) bool {
	h.buffersMu.Lock()
	_, buffered := h.buffers[sessionID]
	h.buffersMu.Unlock()
	if buffered {
		return true
	}

	h.mu.RLock()
	_, connected := h.clients[sessionID]
	h.mu.RUnlock()
	return connected
}

// Discard drops any buffered segments, e.g. on session termination.
func (h *Hub) Discard(sessionID string) {
	h.buffersMu.Lock()
	defer h.buffersMu.Unlock()
	delete(h.buffers, sessionID)
}

// Echo pushes a message to every client of the session (live captions on
// a second device, proctor view).
func (h *Hub) Echo(sessionID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("CaptureHub", "Client send buffer full, dropping message", map[string]interface{}{"session_id": sessionID})
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "capture_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			SessionID string `json:"session_id"`
			Text      string `json:"text"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis capture msg parse error: %v", err)
			continue
		}

		// Only mirror into sessions connected to other instances; the
		// publishing instance already appended locally.
		h.mu.RLock()
		_, local := h.clients[payload.SessionID]
		h.mu.RUnlock()
		if !local {
			h.appendLocal(payload.SessionID, payload.Text)
		}
	}
}
