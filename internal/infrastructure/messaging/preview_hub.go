package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
	sendBuffer     = 16
)

// PreviewClient is one connected preview tab.
type PreviewClient struct {
	Conn   *websocket.Conn
	PageID string
	Send   chan []byte
}

// PreviewHub tracks preview clients per page and fans events out to them.
type PreviewHub struct {
	pageClients  map[string]map[*PreviewClient]bool
	register     chan *PreviewClient
	unregister   chan *PreviewClient
	done         chan struct{}
	pingInterval time.Duration
	logger       *logging.ChanneledLogger
	mu           sync.RWMutex
}

var _ Publisher = (*PreviewHub)(nil)

func NewPreviewHub(pingInterval time.Duration, logger *logging.ChanneledLogger) *PreviewHub {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &PreviewHub{
		pageClients:  make(map[string]map[*PreviewClient]bool),
		register:     make(chan *PreviewClient),
		unregister:   make(chan *PreviewClient),
		done:         make(chan struct{}),
		pingInterval: pingInterval,
		logger:       logger,
	}
}

// Run starts the hub's main loop. It returns when ctx is cancelled, closing
// every client.
func (h *PreviewHub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.pageClients[client.PageID]; !ok {
				h.pageClients[client.PageID] = make(map[*PreviewClient]bool)
			}
			h.pageClients[client.PageID][client] = true
			count := len(h.pageClients[client.PageID])
			h.mu.Unlock()
			h.logger.Realtime().Debug("Preview client registered", "pageId", client.PageID, "clients", count)

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			h.logger.Realtime().Debug("Preview client unregistered", "pageId", client.PageID)

		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for _, clients := range h.pageClients {
				for client := range clients {
					h.remove(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// remove must be called with h.mu held.
func (h *PreviewHub) remove(client *PreviewClient) {
	clients, ok := h.pageClients[client.PageID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.pageClients, client.PageID)
	}
}

// Register queues a client for registration. Once the hub has stopped the
// client's send channel is closed immediately.
func (h *PreviewHub) Register(client *PreviewClient) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.Send)
	}
}

// Unregister queues a client for unregistration.
func (h *PreviewHub) Unregister(client *PreviewClient) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish sends event to every client of its page. Slow clients miss events
// rather than stall the publisher.
func (h *PreviewHub) Publish(event PreviewEvent) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Realtime().Error("Failed to marshal preview event", "type", event.Type, "error", err.Error())
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for client := range h.pageClients[event.PageID] {
		select {
		case client.Send <- message:
			delivered++
		default:
		}
	}
	if delivered > 0 {
		h.logger.Realtime().Debug("Preview event published", "type", event.Type, "pageId", event.PageID, "clients", delivered)
	}
}

func (h *PreviewHub) HasViewers(pageID string) bool {
	return h.ClientCount(pageID) > 0
}

func (h *PreviewHub) ClientCount(pageID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.pageClients[pageID])
}

// Serve registers conn for pageID and pumps messages until the connection
// closes. It blocks for the lifetime of the connection.
func (h *PreviewHub) Serve(conn *websocket.Conn, pageID string) {
	client := &PreviewClient{Conn: conn, PageID: pageID, Send: make(chan []byte, sendBuffer)}
	h.Register(client)

	go h.writePump(client)
	h.readPump(client)
}

// readPump discards inbound messages and detects disconnects.
func (h *PreviewHub) readPump(client *PreviewClient) {
	defer func() {
		h.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	pongWait := h.pingInterval * 2
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Realtime().Warn("Preview connection closed unexpectedly", "pageId", client.PageID, "error", err.Error())
			}
			return
		}
	}
}

func (h *PreviewHub) writePump(client *PreviewClient) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
