package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SetPaid(t *testing.T) {
	f := newPoolFixture()
	rec := &fakeRecomputer{}
	svc := NewUserService(f.users, rec, discardLogger())

	user, err := svc.SetPaid(context.Background(), "caio", true)
	require.NoError(t, err)
	assert.True(t, user.Paid)
	assert.True(t, user.EligibleForRanking())
	assert.Equal(t, []string{"roster_changed"}, rec.reasons)

	_, err = svc.SetPaid(context.Background(), "ghost", true)
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Len(t, rec.reasons, 1)
}

func TestUserService_PaidParticipantJoinsLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newPoolFixture()
	leaderboard := f.leaderboardService()
	svc := NewUserService(f.users, leaderboard, discardLogger())

	_, err := svc.SetPaid(ctx, "caio", true)
	require.NoError(t, err)

	entries, err := leaderboard.Get(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// caio and bruno share 12 points and one exact; names break the tie.
	assert.Equal(t, []string{"bruno", "caio", "ana"}, []string{entries[0].ParticipantID, entries[1].ParticipantID, entries[2].ParticipantID})
	assert.Len(t, f.history.round(1), 3)
}

func TestUserService_ListHidesPasswordHashes(t *testing.T) {
	f := newPoolFixture()
	f.users.users[0].PasswordHash = "$2a$10$secret"

	users, err := NewUserService(f.users, &fakeRecomputer{}, discardLogger()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
	assert.Equal(t, "$2a$10$secret", f.users.users[0].PasswordHash)
}
