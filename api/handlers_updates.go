package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blub-trading/board-proxy/metrics"
)

const (
	updatesWriteTimeout = 10 * time.Second
	updatesPingInterval = 30 * time.Second
)

// updateMessage is pushed to websocket clients when fresh leaderboard data
// lands
type updateMessage struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// handleUpdates upgrades the connection to a websocket and pushes a small
// notification whenever the background refresh lands new leaderboard data.
// Clients are expected to refetch the page they display.
func (s *Server) handleUpdates(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Updates: Upgrade failed: %v", err)
		return
	}

	metrics.UpdateSubscriberConnected()
	defer metrics.UpdateSubscriberDisconnected()
	defer conn.Close()

	sub := s.leaderboardService.SubscribeOnUpdates()
	defer sub.Cancel()

	// Drain client frames to detect a closed connection
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pings := time.NewTicker(updatesPingInterval)
	defer pings.Stop()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(updatesWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sub.Chan():
			conn.SetWriteDeadline(time.Now().Add(updatesWriteTimeout))
			message := updateMessage{Type: "leaderboard_update", Timestamp: time.Now().Unix()}
			if err := conn.WriteJSON(message); err != nil {
				log.Printf("Updates: Write failed: %v", err)
				return
			}
		}
	}
}
