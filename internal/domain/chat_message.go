package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage represents a single direct message, stored in MongoDB.
// ChatID and Timestamp are stamped by the server on the send path.
type ChatMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID      string             `bson:"chat_id" json:"chatId"`
	SenderID    string             `bson:"sender_id" json:"senderId"`
	RecipientID string             `bson:"recipient_id" json:"recipientId"`
	Content     string             `bson:"content" json:"content"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// Notification is the payload pushed to a recipient's private channel
// when a message is persisted for them.
type Notification struct {
	ID          string `json:"id"`
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}
