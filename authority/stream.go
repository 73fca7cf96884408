package authority

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tutils/trand/entropy"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// handleStream answers every {"size":N} message with one binary message of N
// bytes. Failures are reported as a text message and the connection stays
// open.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	log := s.opts.logger.With().Str("client", r.RemoteAddr).Logger()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	// read-side setup stays on this goroutine; startPing only writes
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("stream closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		var req entropy.RawRandRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.metrics.observe("websocket", http.StatusBadRequest)
			if err := conn.WriteMessage(websocket.TextMessage, []byte("invalid request: "+err.Error())); err != nil {
				return
			}
			continue
		}

		b, err := s.take(req.Size)
		if err != nil {
			log.Warn().Err(err).Msg("stream raw_rand rejected")
			s.metrics.observe("websocket", statusOf(err))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(err.Error())); err != nil {
				return
			}
			continue
		}

		s.metrics.observe("websocket", http.StatusOK)
		if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
			log.Debug().Err(err).Msg("stream write")
			return
		}
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
