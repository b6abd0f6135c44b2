package mockapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go/pkg/models"
)

// Event is one accepted write, as published on the /live feed.
type Event struct {
	Action string          `json:"action"` // create, update or delete
	ID     int             `json:"id"`
	User   *models.APIUser `json:"user,omitempty"`
}

// hub fans accepted writes out to every /live subscriber.
type hub struct {
	upgrader websocket.Upgrader
	logger   zerolog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newHub(logger zerolog.Logger) *hub {
	return &hub{
		upgrader: websocket.Upgrader{
			// The feed is as open as the REST surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// GET /live
func (h *hub) serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warn().Err(err).Msg("live upgrade failed")
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Info().Str("remote", conn.RemoteAddr().String()).Msg("live subscriber connected")

	// The feed is write-only; reading just detects the peer going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

func (h *hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *hub) broadcast(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error().Err(err).Msg("event marshal failed")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn().Err(err).Msg("live subscriber dropped")
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteMessage(websocket.CloseMessage, msg)
		conn.Close()
		delete(h.conns, conn)
	}
}
