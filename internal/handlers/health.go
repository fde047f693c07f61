package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectionChecker reports whether the broker connection is open.
type ConnectionChecker interface {
	Connected() bool
}

type HealthHandler struct {
	DB     Pinger
	Broker ConnectionChecker
}

func NewHealthHandler(db Pinger, broker ConnectionChecker) *HealthHandler {
	return &HealthHandler{DB: db, Broker: broker}
}

func (h *HealthHandler) Check(c *gin.Context) {
	database := "ok"

	if err := h.DB.Ping(c.Request.Context()); err != nil {
		database = "unreachable"
	}

	broker := "ok"

	if !h.Broker.Connected() {
		broker = "disconnected"
	}

	c.JSON(200, gin.H{
		"status":    "ok",
		"database":  database,
		"broker":    broker,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
