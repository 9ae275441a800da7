package service

import (
	"duo-talk/internal/delivery"
	"duo-talk/internal/domain"

	"github.com/rs/zerolog"
)

// UserService tracks who is online. Presence only changes on explicit
// announce/depart calls; a client that drops without departing stays
// ONLINE until someone says otherwise.
type UserService struct {
	userRepo IUserRepository
	notifier INotifier
	logger   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo IUserRepository, notifier INotifier, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, notifier: notifier, logger: logger}
}

// Announce upserts the user as ONLINE and echoes them to the public channel.
func (s *UserService) Announce(user *domain.User) (*domain.User, error) {
	user.Status = domain.StatusOnline
	if err := s.userRepo.SaveUser(user); err != nil {
		return nil, err
	}

	s.broadcastPresence(user)
	return user, nil
}

// Depart marks the user OFFLINE and echoes them to the public channel.
// Departing a nickname that was never announced is a no-op on the store.
func (s *UserService) Depart(user *domain.User) (*domain.User, error) {
	stored, err := s.userRepo.GetUserByNickname(user.Nickname)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		stored.Status = domain.StatusOffline
		if err := s.userRepo.SaveUser(stored); err != nil {
			return nil, err
		}
	}

	user.Status = domain.StatusOffline
	s.broadcastPresence(user)
	return user, nil
}

// ListOnlineUsers returns every user currently marked ONLINE.
func (s *UserService) ListOnlineUsers() ([]*domain.User, error) {
	return s.userRepo.GetUsersByStatus(domain.StatusOnline)
}

func (s *UserService) broadcastPresence(user *domain.User) {
	if err := s.notifier.Broadcast(delivery.PublicChannel, user); err != nil {
		s.logger.Warn().Err(err).
			Str("nickname", user.Nickname).
			Msg("failed to broadcast presence event")
	}
}
