package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"github.com/verrdonm/videochat/internal/config"
	"github.com/verrdonm/videochat/internal/core/service"
)

type Handler struct {
	rooms    *service.RoomService
	cfg      config.Config
	upgrader websocket.Upgrader
}

func NewHandler(rooms *service.RoomService, cfg config.Config) *Handler {
	h := &Handler{rooms: rooms, cfg: cfg}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin allows any origin when no allowlist is configured.
func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	return lo.Contains(h.cfg.AllowedOrigins, r.Header.Get("Origin"))
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/ws/{room}/{name}", h.ServeWS)

	fs := http.FileServer(http.Dir(h.cfg.StaticDir))
	r.Handle("/*", fs)

	return r
}
