package delivery

import "fmt"

// PublicChannel is the shared channel carrying presence events.
const PublicChannel = "public"

// MessageQueueSuffix names a user's private message queue.
const MessageQueueSuffix = "queue.messages"

// UserSubject builds the NATS subject for a user's private channel.
func UserSubject(userID, suffix string) string {
	return fmt.Sprintf("chat.user.%s.%s", userID, suffix)
}

// TopicSubject builds the NATS subject for a shared broadcast channel.
func TopicSubject(channel string) string {
	return fmt.Sprintf("chat.topic.%s", channel)
}
