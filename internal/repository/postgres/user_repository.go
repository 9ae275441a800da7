package postgres

import (
	"database/sql"
	"duo-talk/internal/domain"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// SaveUser upserts a user keyed by nickname. A repeated nickname
// overwrites the profile fields as well as the presence status.
func (r *UserRepository) SaveUser(user *domain.User) error {
	query := `
		INSERT INTO users (nickname, full_name, status) VALUES ($1, $2, $3)
		ON CONFLICT (nickname) DO UPDATE SET full_name = $2, status = $3
	`
	_, err := r.DB.Exec(query, user.Nickname, user.FullName, user.Status)
	return err
}

// GetUserByNickname retrieves a user by their nickname.
func (r *UserRepository) GetUserByNickname(nickname string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT nickname, full_name, status FROM users WHERE nickname = $1`
	err := r.DB.QueryRow(query, nickname).Scan(&user.Nickname, &user.FullName, &user.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No user found is not an application error
		}
		return nil, err
	}
	return user, nil
}

// GetUsersByStatus retrieves all users with the given presence status.
func (r *UserRepository) GetUsersByStatus(status domain.Status) ([]*domain.User, error) {
	query := `SELECT nickname, full_name, status FROM users WHERE status = $1`
	rows, err := r.DB.Query(query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.Nickname, &user.FullName, &user.Status); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
