package handlers

import (
	"net/http"
	"time"

	"cadet-corps-backend/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// StreamHandler pushes entity change events to websocket subscribers
type StreamHandler struct {
	bus      *events.Bus
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(bus *events.Bus) *StreamHandler {
	return &StreamHandler{
		bus: bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin is enforced by the CORS middleware on the HTTP side;
			// the upgrade itself accepts any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream handles GET /stream
// @Summary Subscribe to entity change events
// @Description Upgrades to a websocket and pushes change events as JSON. Optional school_year_id and chart_id query parameters narrow the subscription.
// @Tags stream
// @Param school_year_id query string false "Limit events to one school year (UUID)"
// @Param chart_id query string false "Limit events to one chart (UUID)"
// @Success 101 "Switching protocols"
// @Failure 400 {object} map[string]interface{} "Invalid scope parameter"
// @Security BearerAuth
// @Router /stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	scope, err := scopeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ch, cancel := h.bus.Subscribe(scope)
	defer cancel()

	// Drain client frames so close messages are processed; the stream is
	// one-directional otherwise.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func scopeFromQuery(c *gin.Context) (events.Scope, error) {
	var scope events.Scope
	if raw := c.Query("school_year_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return scope, err
		}
		scope.SchoolYearID = id
	}
	if raw := c.Query("chart_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return scope, err
		}
		scope.ChartID = id
	}
	return scope, nil
}
