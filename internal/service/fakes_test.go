package service

import (
	"context"

	"duo-talk/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests.

type fakeRoomRepo struct {
	rooms   map[string]*domain.ChatRoom // keyed by "sender|recipient"
	saveCnt int
	findErr error
	saveErr error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*domain.ChatRoom)}
}

func (f *fakeRoomRepo) GetRoomBySenderAndRecipient(senderID, recipientID string) (*domain.ChatRoom, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	room, ok := f.rooms[senderID+"|"+recipientID]
	if !ok {
		return nil, nil
	}
	return room, nil
}

func (f *fakeRoomRepo) SaveRooms(rooms []*domain.ChatRoom) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCnt++
	for _, room := range rooms {
		f.rooms[room.SenderID+"|"+room.RecipientID] = room
	}
	return nil
}

type fakeMessageRepo struct {
	messages []*domain.ChatMessage
	saveErr  error
	findErr  error
}

func (f *fakeMessageRepo) SaveMessage(_ context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	stored := *message
	f.messages = append(f.messages, &stored)
	return message, nil
}

func (f *fakeMessageRepo) GetMessagesByChatID(_ context.Context, chatID string) ([]*domain.ChatMessage, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*domain.ChatMessage
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users   map[string]*domain.User
	saveErr error
	getErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) SaveUser(user *domain.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := *user
	f.users[user.Nickname] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByNickname(nickname string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[nickname]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUsersByStatus(status domain.Status) ([]*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*domain.User
	for _, user := range f.users {
		if user.Status == status {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

type sentPayload struct {
	userID  string
	suffix  string
	payload interface{}
}

type fakeNotifier struct {
	sent       []sentPayload
	broadcasts []interface{}
	sendErr    error
}

func (f *fakeNotifier) SendToUser(userID, suffix string, payload interface{}) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentPayload{userID: userID, suffix: suffix, payload: payload})
	return nil
}

func (f *fakeNotifier) Broadcast(_ string, payload interface{}) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.broadcasts = append(f.broadcasts, payload)
	return nil
}
