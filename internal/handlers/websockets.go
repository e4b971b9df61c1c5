package handlers

import (
	"net/http"
	"time"

	"wifi_io_panel/internal/metrics"
	"wifi_io_panel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

var upgrader = websocket.Upgrader{
	// the panel is meant for a local network next to the board
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConnect streams the current status first, then every status and toast
// event as it is published.
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	metrics.WSClientConnected()
	defer metrics.WSClientDisconnected()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	events, unsubscribe := h.services.Events.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go h.startReader(conn, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := h.writeEvent(conn, service.Event{Type: service.EventStatus, Data: h.services.Panel.AppInfo()}); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := h.writeEvent(conn, e); err != nil {
				h.log.Infow("ws_write_failed", "err", err, "type", e.Type)
				return
			}
		}
	}
}

// startReader drains incoming frames so control frames are handled and a
// closed connection is noticed.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

func (h *Handler) writeEvent(conn *websocket.Conn, e service.Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(e)
}
