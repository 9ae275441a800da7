package service

import (
	"errors"
	"testing"

	"duo-talk/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnounce_MarksOnlineAndBroadcasts(t *testing.T) {
	repo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	svc := NewUserService(repo, notifier, zerolog.Nop())

	user, err := svc.Announce(&domain.User{Nickname: "alice", FullName: "Alice Liddell"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOnline, user.Status)

	online, err := svc.ListOnlineUsers()
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, "alice", online[0].Nickname)

	require.Len(t, notifier.broadcasts, 1)
}

func TestDepart_MarksOffline(t *testing.T) {
	repo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	svc := NewUserService(repo, notifier, zerolog.Nop())

	_, err := svc.Announce(&domain.User{Nickname: "alice"})
	require.NoError(t, err)

	departed, err := svc.Depart(&domain.User{Nickname: "alice"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOffline, departed.Status)

	online, err := svc.ListOnlineUsers()
	require.NoError(t, err)
	assert.Empty(t, online)

	// One broadcast for the announce, one for the depart.
	assert.Len(t, notifier.broadcasts, 2)
}

func TestDepart_UnknownUserIsNoop(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeNotifier{}, zerolog.Nop())

	_, err := svc.Depart(&domain.User{Nickname: "carol"})
	require.NoError(t, err)
	assert.Empty(t, repo.users, "no record may be created on depart")
}

func TestAnnounce_SameNicknameOverwritesProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeNotifier{}, zerolog.Nop())

	_, err := svc.Announce(&domain.User{Nickname: "alice", FullName: "Alice A"})
	require.NoError(t, err)
	_, err = svc.Depart(&domain.User{Nickname: "alice"})
	require.NoError(t, err)

	_, err = svc.Announce(&domain.User{Nickname: "alice", FullName: "Alice B"})
	require.NoError(t, err)

	stored := repo.users["alice"]
	require.NotNil(t, stored)
	assert.Equal(t, "Alice B", stored.FullName)
	assert.Equal(t, domain.StatusOnline, stored.Status)
}

func TestAnnounce_PropagatesStoreErrors(t *testing.T) {
	repo := newFakeUserRepo()
	repo.saveErr = errors.New("store unavailable")
	notifier := &fakeNotifier{}
	svc := NewUserService(repo, notifier, zerolog.Nop())

	_, err := svc.Announce(&domain.User{Nickname: "alice"})
	require.Error(t, err)
	assert.Empty(t, notifier.broadcasts)
}
