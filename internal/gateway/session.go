package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"duo-talk/internal/delivery"
	"duo-talk/internal/domain"
	"duo-talk/internal/service"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Broker is the subscribe side of the delivery layer: a session listens
// on its user's private subjects and the shared presence topic.
type Broker interface {
	SubscribeUser(userID, suffix string, handler func(data []byte)) (*nats.Subscription, error)
	SubscribeBroadcast(channel string, handler func(data []byte)) (*nats.Subscription, error)
}

// Session ties one websocket connection to one nickname. It forwards
// inbound envelopes to the services and relays broker payloads back to
// the client as typed envelopes.
type Session struct {
	nickname       string
	conn           *websocket.Conn
	send           chan []byte
	broker         Broker
	messageService service.IMessageService
	userService    service.IUserService
	logger         zerolog.Logger

	mu     sync.Mutex // guards closed and the final close of send
	closed bool
}

// NewSession creates a session for an upgraded connection.
func NewSession(conn *websocket.Conn, nickname string, broker Broker, messageService service.IMessageService, userService service.IUserService, logger zerolog.Logger) *Session {
	return &Session{
		nickname:       nickname,
		conn:           conn,
		send:           make(chan []byte, 256),
		broker:         broker,
		messageService: messageService,
		userService:    userService,
		logger:         logger.With().Str("nickname", nickname).Logger(),
	}
}

// Run subscribes the session and pumps messages until the connection
// closes. Closing the connection does NOT mark the user offline; only an
// explicit disconnect_user envelope does that.
func (s *Session) Run(ctx context.Context) {
	queueSub, err := s.broker.SubscribeUser(s.nickname, delivery.MessageQueueSuffix, func(data []byte) {
		s.enqueue(domain.TypeNewMessage, data)
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to subscribe to message queue")
		s.conn.Close()
		return
	}

	publicSub, err := s.broker.SubscribeBroadcast(delivery.PublicChannel, func(data []byte) {
		s.enqueue(domain.TypePresence, data)
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to subscribe to public topic")
		queueSub.Unsubscribe()
		s.conn.Close()
		return
	}

	defer func() {
		// Unsubscribe stops new deliveries, but a callback already in
		// flight can still fire; the closed flag makes it drop its
		// payload instead of hitting a closed channel.
		queueSub.Unsubscribe()
		publicSub.Unsubscribe()
		s.mu.Lock()
		s.closed = true
		close(s.send)
		s.mu.Unlock()
	}()

	go s.writePump()
	s.readPump(ctx)
}

// readPump reads envelopes from the websocket and dispatches them.
func (s *Session) readPump(ctx context.Context) {
	defer s.conn.Close()

	for {
		var req domain.WebSocketMessage
		if err := s.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		s.handleEnvelope(ctx, req)
	}
}

// writePump drains the send channel into the websocket. A single writer
// per connection keeps gorilla happy.
func (s *Session) writePump() {
	for message := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.logger.Warn().Err(err).Msg("websocket write error")
			return
		}
	}
}

func (s *Session) handleEnvelope(ctx context.Context, req domain.WebSocketMessage) {
	switch req.Type {
	case domain.TypeSendMessage:
		var payload domain.SendMessagePayload
		if err := parsePayload(req.Payload, &payload); err != nil {
			s.sendError("Invalid send_message payload.")
			return
		}
		message := &domain.ChatMessage{
			SenderID:    s.nickname,
			RecipientID: payload.Recipient,
			Content:     payload.Content,
		}
		if _, err := s.messageService.SendMessage(ctx, message); err != nil {
			s.logger.Error().Err(err).Str("recipient", payload.Recipient).Msg("failed to send message")
			s.sendError("Failed to send message.")
		}

	case domain.TypeAddUser:
		user, err := parseUser(req.Payload, s.nickname)
		if err != nil {
			s.sendError("Invalid add_user payload.")
			return
		}
		if _, err := s.userService.Announce(user); err != nil {
			s.logger.Error().Err(err).Msg("failed to announce user")
			s.sendError("Failed to announce user.")
		}

	case domain.TypeDisconnectUser:
		user, err := parseUser(req.Payload, s.nickname)
		if err != nil {
			s.sendError("Invalid disconnect_user payload.")
			return
		}
		if _, err := s.userService.Depart(user); err != nil {
			s.logger.Error().Err(err).Msg("failed to depart user")
			s.sendError("Failed to depart user.")
		}

	default:
		s.sendError("Unknown message type: " + req.Type)
	}
}

// enqueue wraps a broker payload in an envelope and queues it for the
// client. A full send buffer drops the payload; delivery is best effort.
func (s *Session) enqueue(msgType string, payload []byte) {
	data, err := json.Marshal(domain.WebSocketMessage{
		Type:    msgType,
		Payload: json.RawMessage(payload),
	})
	if err != nil {
		return
	}
	if !s.trySend(data) {
		s.logger.Warn().Str("type", msgType).Msg("dropping payload")
	}
}

func (s *Session) sendError(content string) {
	data, err := json.Marshal(domain.WebSocketMessage{
		Type:    domain.TypeError,
		Payload: domain.ErrorPayload{Content: content},
	})
	if err != nil {
		return
	}
	s.trySend(data)
}

// trySend queues data for the write pump. It reports false when the
// session is torn down or the buffer is full; either way the payload is
// dropped, never blocked on.
func (s *Session) trySend(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

// parsePayload re-marshals the untyped envelope payload into a concrete type.
func parsePayload(payload interface{}, result interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.New("failed to marshal payload")
	}
	return json.Unmarshal(data, result)
}

// parseUser reads a user payload, falling back to the session identity
// when the client omits the nickname.
func parseUser(payload interface{}, fallbackNickname string) (*domain.User, error) {
	var user domain.User
	if err := parsePayload(payload, &user); err != nil {
		return nil, err
	}
	if user.Nickname == "" {
		user.Nickname = fallbackNickname
	}
	return &user, nil
}
