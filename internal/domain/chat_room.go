package domain

import "github.com/google/uuid"

// ChatRoom links an ordered (sender, recipient) pair to a chat ID.
// Each first contact creates two of these, one per direction, sharing
// the same ChatID. Rooms are never updated or deleted.
type ChatRoom struct {
	ID          uuid.UUID `json:"id"`
	ChatID      string    `json:"chatId"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
}

// NewChatRoomPair builds the two directional rooms for a first contact.
// The chat ID keeps the order of that first contact.
func NewChatRoomPair(senderID, recipientID string) (string, []*ChatRoom) {
	chatID := senderID + "_" + recipientID
	return chatID, []*ChatRoom{
		{ID: uuid.New(), ChatID: chatID, SenderID: senderID, RecipientID: recipientID},
		{ID: uuid.New(), ChatID: chatID, SenderID: recipientID, RecipientID: senderID},
	}
}
