package handler

import (
	"encoding/json"
	"net/http"

	"duo-talk/internal/domain"
	"duo-talk/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// RestHandler serves the read-side HTTP endpoints.
type RestHandler struct {
	messageService service.IMessageService
	userService    service.IUserService
	logger         zerolog.Logger
}

// NewRestHandler creates a new RestHandler.
func NewRestHandler(messageService service.IMessageService, userService service.IUserService, logger zerolog.Logger) *RestHandler {
	return &RestHandler{
		messageService: messageService,
		userService:    userService,
		logger:         logger,
	}
}

// GetMessages handles GET /messages/{senderId}/{recipientId}. A pair
// that never talked returns an empty array, not an error.
func (h *RestHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	senderID := vars["senderId"]
	recipientID := vars["recipientId"]

	messages, err := h.messageService.GetChatMessages(r.Context(), senderID, recipientID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load chat messages")
		http.Error(w, "Failed to load messages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, messages)
}

// GetUsers handles GET /users, listing everyone currently online.
func (h *RestHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListOnlineUsers()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list online users")
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}

	h.writeJSON(w, users)
}

func (h *RestHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
