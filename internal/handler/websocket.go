package handler

import (
	"net/http"

	"duo-talk/internal/gateway"
	"duo-talk/internal/service"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// All origins allowed; there is no auth surface to protect.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebsocketHandler upgrades connections and hands them to a session.
type WebsocketHandler struct {
	broker         gateway.Broker
	messageService service.IMessageService
	userService    service.IUserService
	logger         zerolog.Logger
}

// NewWebsocketHandler creates a new WebsocketHandler.
func NewWebsocketHandler(broker gateway.Broker, messageService service.IMessageService, userService service.IUserService, logger zerolog.Logger) *WebsocketHandler {
	return &WebsocketHandler{
		broker:         broker,
		messageService: messageService,
		userService:    userService,
		logger:         logger,
	}
}

// HandleConnection handles GET /ws?nickname=gopher.
func (h *WebsocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		http.Error(w, "Nickname is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	session := gateway.NewSession(conn, nickname, h.broker, h.messageService, h.userService, h.logger)
	session.Run(r.Context())
}
