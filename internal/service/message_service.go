package service

import (
	"context"
	"fmt"
	"time"

	"duo-talk/internal/delivery"
	"duo-talk/internal/domain"

	"github.com/rs/zerolog"
)

// MessageService routes direct messages: it stamps them with their chat
// ID and timestamp, persists them, and pushes a best-effort notification
// to the recipient's private channel.
type MessageService struct {
	roomService IRoomService
	messageRepo IMessageRepository
	notifier    INotifier
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService.
func NewMessageService(roomService IRoomService, messageRepo IMessageRepository, notifier INotifier, logger zerolog.Logger) *MessageService {
	return &MessageService{
		roomService: roomService,
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// SendMessage persists the message and notifies the recipient. A
// persistence failure aborts the send; a notification failure does not —
// the message is durable and readable via history either way.
func (s *MessageService) SendMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	chatID, _, err := s.roomService.ResolveChatID(message.SenderID, message.RecipientID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chat room: %w", err)
	}

	message.ChatID = chatID
	message.Timestamp = time.Now().UTC()

	saved, err := s.messageRepo.SaveMessage(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	notification := domain.Notification{
		ID:          saved.ID.Hex(),
		SenderID:    saved.SenderID,
		RecipientID: saved.RecipientID,
		Content:     saved.Content,
	}
	if err := s.notifier.SendToUser(saved.RecipientID, delivery.MessageQueueSuffix, notification); err != nil {
		// Fire and forget: the recipient reads it from history later.
		s.logger.Warn().Err(err).
			Str("recipient", saved.RecipientID).
			Msg("failed to deliver message notification")
	}

	return saved, nil
}

// GetChatMessages returns the conversation between the two participants
// in store order. A pair that never talked yields an empty slice.
func (s *MessageService) GetChatMessages(ctx context.Context, senderID, recipientID string) ([]*domain.ChatMessage, error) {
	chatID, ok, err := s.roomService.ResolveChatID(senderID, recipientID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*domain.ChatMessage{}, nil
	}

	messages, err := s.messageRepo.GetMessagesByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		// A room with no messages yet reads as empty, never null.
		messages = []*domain.ChatMessage{}
	}
	return messages, nil
}
