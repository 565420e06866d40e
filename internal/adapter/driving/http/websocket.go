package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gws "github.com/verrdonm/videochat/internal/adapter/driven/gateway/ws"
	"github.com/verrdonm/videochat/internal/core/domain"
	"github.com/verrdonm/videochat/internal/core/service"
)

// ServeWS upgrades the connection and drives its read loop. Room and name come
// from the path and are fixed for the connection's lifetime.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "room")
	name := chi.URLParam(r, "name")
	if room == "" || name == "" {
		http.Error(w, "room and name are required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	l := log.With().
		Str("conn_id", uuid.NewString()).
		Str("room", room).
		Str("name", name).
		Logger()
	l.Info().Msg("New client connected")

	client := gws.NewClient(conn, h.cfg.WriteWait)
	if !h.rooms.Join(room, service.NewParticipant(name, client)) {
		l.Warn().Msg("Name already taken in room, closing connection")
		conn.Close()
		return
	}

	defer func() {
		l.Info().Msg("Client disconnected")
		h.rooms.Leave(room, name)
		conn.Close()
	}()

	conn.SetReadLimit(h.cfg.ReadLimit)
	conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	stop := make(chan struct{})
	defer close(stop)
	go h.keepalive(client, stop, l)

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		msg, err := domain.ParseMessage(data)
		if err != nil {
			l.Warn().Err(err).Msg("Dropping malformed frame")
			continue
		}
		h.rooms.Relay(room, msg)
	}
}

// keepalive pings on a ticker until the read loop ends. Pings ride on control
// frames, so they never contend with message writes.
func (h *Handler) keepalive(client *gws.Client, stop <-chan struct{}, l zerolog.Logger) {
	ticker := time.NewTicker(h.cfg.PingPeriod())
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := client.Ping(); err != nil {
				l.Debug().Err(err).Msg("Ping failed")
				return
			}
		}
	}
}
