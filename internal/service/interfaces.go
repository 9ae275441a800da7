package service

import (
	"context"

	"duo-talk/internal/domain"
)

// --- Service Interfaces ---

// IRoomService resolves chat IDs for participant pairs.
type IRoomService interface {
	// ResolveChatID returns the chat ID for the ordered pair, creating
	// the room mappings when createIfMissing is set. The bool reports
	// whether an ID exists.
	ResolveChatID(senderID, recipientID string, createIfMissing bool) (string, bool, error)
}

// IMessageService defines the message send and history read paths.
type IMessageService interface {
	SendMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	GetChatMessages(ctx context.Context, senderID, recipientID string) ([]*domain.ChatMessage, error)
}

// IUserService tracks participant presence.
type IUserService interface {
	Announce(user *domain.User) (*domain.User, error)
	Depart(user *domain.User) (*domain.User, error)
	ListOnlineUsers() ([]*domain.User, error)
}

// --- Repository Interfaces ---

// IUserRepository defines the interface for user persistence.
type IUserRepository interface {
	SaveUser(user *domain.User) error
	GetUserByNickname(nickname string) (*domain.User, error)
	GetUsersByStatus(status domain.Status) ([]*domain.User, error)
}

// IRoomRepository defines the interface for room mapping persistence.
type IRoomRepository interface {
	GetRoomBySenderAndRecipient(senderID, recipientID string) (*domain.ChatRoom, error)
	SaveRooms(rooms []*domain.ChatRoom) error
}

// IMessageRepository defines the interface for message persistence.
type IMessageRepository interface {
	SaveMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	GetMessagesByChatID(ctx context.Context, chatID string) ([]*domain.ChatMessage, error)
}

// --- Delivery Port ---

// INotifier is the best-effort push channel towards connected clients.
// Failures are the caller's business to drop, never to retry.
type INotifier interface {
	SendToUser(userID, suffix string, payload interface{}) error
	Broadcast(channel string, payload interface{}) error
}
