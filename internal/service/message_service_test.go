package service

import (
	"context"
	"errors"
	"testing"

	"duo-talk/internal/delivery"
	"duo-talk/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageService(roomRepo *fakeRoomRepo, messageRepo *fakeMessageRepo, notifier *fakeNotifier) *MessageService {
	return NewMessageService(NewRoomService(roomRepo), messageRepo, notifier, zerolog.Nop())
}

func TestSendMessage_StampsPersistsAndNotifies(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	svc := newMessageService(newFakeRoomRepo(), messageRepo, notifier)

	saved, err := svc.SendMessage(context.Background(), &domain.ChatMessage{
		SenderID:    "alice",
		RecipientID: "bob",
		Content:     "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice_bob", saved.ChatID)
	assert.False(t, saved.ID.IsZero())
	assert.False(t, saved.Timestamp.IsZero())
	require.Len(t, messageRepo.messages, 1)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "bob", notifier.sent[0].userID)
	assert.Equal(t, delivery.MessageQueueSuffix, notifier.sent[0].suffix)
	notification, ok := notifier.sent[0].payload.(domain.Notification)
	require.True(t, ok)
	assert.Equal(t, saved.ID.Hex(), notification.ID)
	assert.Equal(t, "alice", notification.SenderID)
	assert.Equal(t, "bob", notification.RecipientID)
	assert.Equal(t, "hi", notification.Content)
}

func TestSendMessage_DeliveryFailureIsStillSuccess(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	notifier := &fakeNotifier{sendErr: errors.New("nobody listening")}
	svc := newMessageService(newFakeRoomRepo(), messageRepo, notifier)

	_, err := svc.SendMessage(context.Background(), &domain.ChatMessage{
		SenderID:    "alice",
		RecipientID: "bob",
		Content:     "hi",
	})

	// The message is durable even though the live push was lost.
	require.NoError(t, err)
	assert.Len(t, messageRepo.messages, 1)
}

func TestSendMessage_PersistenceFailureAborts(t *testing.T) {
	messageRepo := &fakeMessageRepo{saveErr: errors.New("store unavailable")}
	notifier := &fakeNotifier{}
	svc := newMessageService(newFakeRoomRepo(), messageRepo, notifier)

	_, err := svc.SendMessage(context.Background(), &domain.ChatMessage{
		SenderID:    "alice",
		RecipientID: "bob",
		Content:     "hi",
	})

	require.Error(t, err)
	assert.Empty(t, notifier.sent)
}

func TestSendMessage_ResolveFailureAborts(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	roomRepo.findErr = errors.New("store unavailable")
	messageRepo := &fakeMessageRepo{}
	svc := newMessageService(roomRepo, messageRepo, &fakeNotifier{})

	_, err := svc.SendMessage(context.Background(), &domain.ChatMessage{
		SenderID:    "alice",
		RecipientID: "bob",
		Content:     "hi",
	})

	require.Error(t, err)
	assert.Empty(t, messageRepo.messages)
}

func TestGetChatMessages_EmptyWhenNeverTalked(t *testing.T) {
	svc := newMessageService(newFakeRoomRepo(), &fakeMessageRepo{}, &fakeNotifier{})

	messages, err := svc.GetChatMessages(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestGetChatMessages_ResolvedChatWithoutMessages(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	roomService := NewRoomService(roomRepo)
	svc := NewMessageService(roomService, &fakeMessageRepo{}, &fakeNotifier{}, zerolog.Nop())

	// A failed first send can leave the room behind without a message.
	_, _, err := roomService.ResolveChatID("alice", "bob", true)
	require.NoError(t, err)

	messages, err := svc.GetChatMessages(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, messages, "an empty chat must encode as [], not null")
	assert.Empty(t, messages)
}

func TestGetChatMessages_RoundTrip(t *testing.T) {
	svc := newMessageService(newFakeRoomRepo(), &fakeMessageRepo{}, &fakeNotifier{})

	sent, err := svc.SendMessage(context.Background(), &domain.ChatMessage{
		SenderID:    "alice",
		RecipientID: "bob",
		Content:     "hi",
	})
	require.NoError(t, err)

	// Both directions read the same conversation.
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		messages, err := svc.GetChatMessages(context.Background(), pair[0], pair[1])
		require.NoError(t, err)
		require.Len(t, messages, 1)

		got := messages[0]
		assert.Equal(t, sent.ID, got.ID)
		assert.Equal(t, sent.ChatID, got.ChatID)
		assert.Equal(t, "alice", got.SenderID)
		assert.Equal(t, "bob", got.RecipientID)
		assert.Equal(t, "hi", got.Content)
		assert.True(t, sent.Timestamp.Equal(got.Timestamp))
	}
}
