package mongo

import (
	"context"

	"duo-talk/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const messageCollection = "messages"

// MessageRepository handles database operations for chat messages.
type MessageRepository struct {
	DB *mongo.Database
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{DB: db}
}

// SaveMessage inserts a new chat message and returns it with its ID set.
// The ID is assigned before the insert so callers can reference it in
// the notification they push to the recipient.
func (r *MessageRepository) SaveMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	collection := r.DB.Collection(messageCollection)
	if _, err := collection.InsertOne(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessagesByChatID retrieves all messages for a chat in insertion order.
func (r *MessageRepository) GetMessagesByChatID(ctx context.Context, chatID string) ([]*domain.ChatMessage, error) {
	collection := r.DB.Collection(messageCollection)

	cursor, err := collection.Find(ctx, bson.M{"chat_id": chatID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*domain.ChatMessage
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}
