package services

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatHub fans every inbound chat message out to all connected clients.
// Payloads are relayed untouched; clients exchange models.ChatMessage
// frames but the hub never inspects them.
// There is no history, no authentication and no delivery guarantee: a
// client connecting mid-conversation starts with an empty view, and a slow
// client has messages dropped rather than blocking the hub.
type ChatHub struct {
	mu      sync.RWMutex
	clients map[uint64]*ChatClient
	nextID  uint64
}

func NewChatHub() *ChatHub {
	return &ChatHub{clients: make(map[uint64]*ChatClient)}
}

// HandleWebSocket upgrades the request and registers the connection.
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[Chat] upgrade error: %v", err)
		return
	}
	h.addClient(conn)
}

func (h *ChatHub) addClient(conn *websocket.Conn) {
	h.mu.Lock()
	h.nextID++
	client := &ChatClient{
		id:   h.nextID,
		conn: conn,
		hub:  h,
		send: make(chan []byte, 32),
	}
	h.clients[client.id] = client
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()

	log.Printf("[Chat] client %d connected (total=%d)", client.id, h.clientCount())
}

func (h *ChatHub) removeClient(id uint64) {
	h.mu.Lock()
	client, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		client.Close()
	}
	h.mu.Unlock()

	if ok {
		log.Printf("[Chat] client %d disconnected (total=%d)", id, h.clientCount())
	}
}

func (h *ChatHub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends the payload to every registered client, the originator
// included. Clients whose send buffer is full are skipped.
func (h *ChatHub) Broadcast(msg []byte) {
	h.mu.RLock()
	clients := make([]*ChatClient, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		func(c *ChatClient) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Chat] recovered broadcast to client %d: %v", c.id, r)
				}
			}()
			select {
			case c.send <- msg:
			default:
				log.Printf("[Chat] dropping msg to client %d", c.id)
			}
		}(c)
	}
}
