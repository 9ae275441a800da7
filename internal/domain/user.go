package domain

// Status is a user's presence state.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

// User represents a chat participant. The nickname is the identity:
// announcing the same nickname again overwrites the stored profile.
type User struct {
	Nickname string `json:"nickName"`
	FullName string `json:"fullName"`
	Status   Status `json:"status"`
}
