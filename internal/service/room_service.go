package service

import "duo-talk/internal/domain"

// RoomService derives stable chat IDs for participant pairs.
type RoomService struct {
	roomRepo IRoomRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomRepo IRoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// ResolveChatID looks up the chat ID for the ordered (sender, recipient)
// pair. On first contact with createIfMissing set, it mints an ID from
// that order and persists both directional mappings, so either side
// resolves to the same ID from then on. Without createIfMissing an
// unknown pair is reported as absent, not as an error.
func (s *RoomService) ResolveChatID(senderID, recipientID string, createIfMissing bool) (string, bool, error) {
	room, err := s.roomRepo.GetRoomBySenderAndRecipient(senderID, recipientID)
	if err != nil {
		return "", false, err
	}
	if room != nil {
		return room.ChatID, true, nil
	}

	if !createIfMissing {
		return "", false, nil
	}

	chatID, rooms := domain.NewChatRoomPair(senderID, recipientID)
	if err := s.roomRepo.SaveRooms(rooms); err != nil {
		return "", false, err
	}

	return chatID, true, nil
}
