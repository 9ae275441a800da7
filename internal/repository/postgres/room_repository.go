package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"duo-talk/internal/domain"
)

// RoomRepository handles database operations for chat room mappings.
type RoomRepository struct {
	DB *sql.DB
}

// NewRoomRepository creates a new RoomRepository.
func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

// GetRoomBySenderAndRecipient looks up the room for the ordered pair.
func (r *RoomRepository) GetRoomBySenderAndRecipient(senderID, recipientID string) (*domain.ChatRoom, error) {
	room := &domain.ChatRoom{}
	query := `SELECT id, chat_id, sender_id, recipient_id FROM chat_rooms WHERE sender_id = $1 AND recipient_id = $2`
	err := r.DB.QueryRow(query, senderID, recipientID).Scan(&room.ID, &room.ChatID, &room.SenderID, &room.RecipientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, err
	}
	return room, nil
}

// SaveRooms inserts the two directional mappings of a first contact in a
// single statement, so a reader never sees half a pairing.
func (r *RoomRepository) SaveRooms(rooms []*domain.ChatRoom) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO chat_rooms (id, chat_id, sender_id, recipient_id) VALUES `)
	args := make([]interface{}, 0, len(rooms)*4)
	for i, room := range rooms {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, room.ID, room.ChatID, room.SenderID, room.RecipientID)
	}
	_, err := r.DB.Exec(sb.String(), args...)
	return err
}
