package domain

// WebSocketMessage is the standard envelope exchanged with clients.
type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Envelope types.
const (
	TypeSendMessage    = "send_message"
	TypeAddUser        = "add_user"
	TypeDisconnectUser = "disconnect_user"
	TypeNewMessage     = "new_message"
	TypePresence       = "presence"
	TypeError          = "error_message"
)

// SendMessagePayload is the payload of a 'send_message' request.
type SendMessagePayload struct {
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
}

// ErrorPayload is the payload of an 'error_message' sent back to a client.
type ErrorPayload struct {
	Content string `json:"content"`
}
