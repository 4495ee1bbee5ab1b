package services

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type ChatClient struct {
	id   uint64
	conn *websocket.Conn
	hub  *ChatHub
	send chan []byte
	once sync.Once
}

func (c *ChatClient) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// --------------------
// Client read/write pumps
// --------------------
func (c *ChatClient) readPump() {
	defer func() {
		c.hub.removeClient(c.id)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[Chat %d] disconnected normally", c.id)
			} else {
				log.Printf("[Chat %d] read error: %v", c.id, err)
			}
			return
		}

		// Every inbound message goes back out to every client, the
		// sender included. The payload is relayed untouched.
		c.hub.Broadcast(message)
	}
}

func (c *ChatClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("[Chat %d] write error: %v", c.id, err)
			return
		}
	}
}
