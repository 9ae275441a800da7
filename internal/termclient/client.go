package termclient

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"duo-talk/internal/domain"

	"github.com/gorilla/websocket"
)

// Client manages the WebSocket connection of the terminal client.
type Client struct {
	Conn     *websocket.Conn
	Send     chan domain.WebSocketMessage // serializes writes to the connection
	nickname string
}

// NewClient creates a new terminal client.
func NewClient() *Client {
	return &Client{
		Send: make(chan domain.WebSocketMessage, 256),
	}
}

// Connect dials the server, announces the user, and starts the pumps.
func (c *Client) Connect(serverURL, nickname, fullName string) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("nickname", nickname)
	u.RawQuery = q.Encode()

	log.Printf("Connecting to %s...", u.String())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	log.Println("Connection successful!")
	c.Conn = conn
	c.nickname = nickname

	go c.readPump()
	go c.writePump()

	// Go on the air.
	c.Send <- domain.WebSocketMessage{
		Type:    domain.TypeAddUser,
		Payload: domain.User{Nickname: nickname, FullName: fullName},
	}

	return nil
}

// Disconnect announces the departure and closes the connection.
func (c *Client) Disconnect() {
	c.Send <- domain.WebSocketMessage{
		Type:    domain.TypeDisconnectUser,
		Payload: domain.User{Nickname: c.nickname},
	}
	// Give the write pump a moment to flush before closing.
	time.Sleep(100 * time.Millisecond)
	c.Conn.Close()
}

// readPump prints messages from the server to stdout.
func (c *Client) readPump() {
	defer c.Conn.Close()
	for {
		var msg domain.WebSocketMessage
		if err := c.Conn.ReadJSON(&msg); err != nil {
			log.Printf("Connection closed: %v", err)
			os.Exit(0)
			return
		}

		c.handleServerMessage(msg)
	}
}

// writePump sends messages from the Send channel to the server.
func (c *Client) writePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			log.Printf("Write error: %v", err)
			return
		}
	}
}

// HandleStdin reads terminal input and turns it into envelopes.
func (c *Client) HandleStdin() {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Enter message (e.g., /dm Bob Hello!):")
	fmt.Print("> ")

	for {
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if input == "" {
			fmt.Print("> ")
			continue
		}

		switch {
		case strings.HasPrefix(input, "/dm"):
			parts := strings.SplitN(input, " ", 3)
			if len(parts) < 3 {
				fmt.Printf("\r[ERROR] Invalid command format. Use: /dm [nickname] [message]\n")
			} else {
				c.Send <- domain.WebSocketMessage{
					Type: domain.TypeSendMessage,
					Payload: domain.SendMessagePayload{
						Recipient: parts[1],
						Content:   parts[2],
					},
				}
				fmt.Printf("[%s] [Me -> %s]: %s\n", time.Now().Format("15:04:05"), parts[1], parts[2])
			}
		case input == "/quit":
			c.Disconnect()
			os.Exit(0)
		default:
			fmt.Printf("\r[ERROR] Invalid command. Use /dm or /quit.\n")
		}
		fmt.Print("> ")
	}
}

// handleServerMessage pretty-prints a server envelope to the console.
func (c *Client) handleServerMessage(msg domain.WebSocketMessage) {
	payloadBytes, _ := json.Marshal(msg.Payload)
	timestamp := time.Now().Format("15:04:05")

	var output string

	switch msg.Type {
	case domain.TypeNewMessage:
		var n domain.Notification
		if err := json.Unmarshal(payloadBytes, &n); err != nil {
			return
		}
		output = fmt.Sprintf("[%s] [DM from %s]: %s", timestamp, n.SenderID, n.Content)

	case domain.TypePresence:
		var user domain.User
		if err := json.Unmarshal(payloadBytes, &user); err != nil {
			return
		}
		if user.Nickname == c.nickname {
			return // our own echo
		}
		verb := "is online"
		if user.Status == domain.StatusOffline {
			verb = "went offline"
		}
		output = fmt.Sprintf("[%s] [SYSTEM]: %s %s", timestamp, user.Nickname, verb)

	case domain.TypeError:
		var e domain.ErrorPayload
		if err := json.Unmarshal(payloadBytes, &e); err != nil {
			return
		}
		output = fmt.Sprintf("[%s] [SERVER ERROR]: %s", timestamp, e.Content)

	default:
		output = fmt.Sprintf("[%s] [UNKNOWN]: %v", timestamp, msg)
	}

	// Redraw the prompt under the incoming line.
	fmt.Printf("\r%s\n> ", output)
}
