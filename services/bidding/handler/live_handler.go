package handler

import (
	"net/http"
	"time"

	"art-auction/internal/notify"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// LiveHub is the broadcast source behind the live channel
type LiveHub interface {
	Subscribe() *notify.Subscription
	Unsubscribe(sub *notify.Subscription)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LiveHandler handles GET /live. The connection gets the current latest bids, then
// every event broadcast while it stays subscribed.
func (h *BiddingHandler) LiveHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("LiveHandler: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	defer conn.Close()

	sub := h.live.Subscribe()
	defer h.live.Unsubscribe(sub)
	utils.Debug("LiveHandler: observer connected", map[string]any{"remote": c.ClientIP()})

	latest, err := h.service.LatestBids(c.Request.Context())
	if err != nil {
		utils.Warn("LiveHandler: initial snapshot failed", map[string]any{"error": err.Error()})
	} else if err := writeMessage(conn, notify.Message{Event: notify.EventLatestBids, Data: latest}); err != nil {
		return
	}

	done := make(chan struct{})
	go readPump(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case msg, ok := <-sub.C:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
			if err := writeMessage(conn, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and closes done when the peer goes away
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeMessage(conn *websocket.Conn, msg notify.Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		utils.Debug("LiveHandler: write failed", map[string]any{"event": msg.Event, "error": err.Error()})
		return err
	}
	return nil
}
