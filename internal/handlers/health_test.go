package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeConnection struct{ connected bool }

func (f fakeConnection) Connected() bool { return f.connected }

func setupHealthRouter(db Pinger, broker ConnectionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/api/health", NewHealthHandler(db, broker).Check)

	return r
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		connected  bool
		wantDB     string
		wantBroker string
	}{
		{"all up", nil, true, "ok", "ok"},
		{"database down", errors.New("dial tcp: connection refused"), true, "unreachable", "ok"},
		{"broker down", nil, false, "ok", "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupHealthRouter(fakePinger{err: tt.pingErr}, fakeConnection{connected: tt.connected})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])
			assert.Equal(t, tt.wantDB, body["database"])
			assert.Equal(t, tt.wantBroker, body["broker"])
			assert.NotEmpty(t, body["timestamp"])
		})
	}
}
