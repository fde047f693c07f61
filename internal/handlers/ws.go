package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mjtaylor123/sunlessCoding/internal/notify"
	"github.com/mjtaylor123/sunlessCoding/internal/types"
)

var (
	feedClients   = make(map[string]map[*websocket.Conn]bool)
	feedClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastPostCreated pushes a processed post-created notification to every
// feed client watching that user. It is a notify consumer Handler.
func BroadcastPostCreated(_ context.Context, msg notify.PostCreated) error {
	userID := strconv.FormatUint(uint64(msg.UserID), 10)

	feedClientsMu.RLock()
	clients, exists := feedClients[userID]
	if !exists || len(clients) == 0 {
		feedClientsMu.RUnlock()
		return nil
	}

	// Copy the set so the lock is not held while writing to sockets
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	feedClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(gin.H{
			"type":    "post_created",
			"user_id": msg.UserID,
			"post_id": msg.PostID,
			"title":   msg.Title,
			"content": msg.Content,
		})

		if err != nil {
			log.Printf("Failed to broadcast post to client: %v", err)
			removeFeedClient(userID, conn)
			conn.Close()
		}
	}

	return nil
}

func removeFeedClient(userID string, conn *websocket.Conn) {
	feedClientsMu.Lock()

	if clients, exists := feedClients[userID]; exists {
		delete(clients, conn)

		if len(clients) == 0 {
			delete(feedClients, userID)
		}
	}

	feedClientsMu.Unlock()
}

// PostFeed upgrades the connection and streams post-created notifications
// for the user in the path until the client goes away.
func PostFeed(c *gin.Context) {
	userID := c.Param("user_id")

	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	feedClientsMu.Lock()
	if feedClients[userID] == nil {
		feedClients[userID] = make(map[*websocket.Conn]bool)
	}
	feedClients[userID][conn] = true
	feedClientsMu.Unlock()

	defer func() {
		removeFeedClient(userID, conn)
		conn.Close()

		log.Printf("WebSocket connection closed for user %s", userID)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "WebSocket connection established",
		"user_id": userID,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		// Send pings periodically
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for user %s: %v", userID, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for user %s: %v", userID, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for user %s: %v", userID, err)
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for user %s: %v", userID, err)
			}
			break
		}
	}
}
