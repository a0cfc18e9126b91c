package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringgate/internal/shared/biztime"
)

func TestSweepExpiredSessionsUseCase_RemovesOnlyExpiredRows(t *testing.T) {
	repo := newMemorySessionRepo()
	uc := NewSweepExpiredSessionsUseCase(repo, testLogger())

	live := newStoredSession(t, repo, 0)

	expired := newStoredSession(t, repo, 1)
	repo.get(expired.ID).ExpiresAt = biztime.NowUTC().Add(-time.Minute)

	// Expired sessions are swept verified or not.
	expiredVerified := newStoredSession(t, repo, 2)
	stored := repo.get(expiredVerified.ID)
	stored.ExpiresAt = biztime.NowUTC().Add(-time.Hour)
	stored.Verified = true

	removed, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, removed)
	assert.NotNil(t, repo.get(live.ID))
	assert.Nil(t, repo.get(expired.ID))
	assert.Nil(t, repo.get(expiredVerified.ID))
}

func TestSweepExpiredSessionsUseCase_NothingToSweep(t *testing.T) {
	repo := newMemorySessionRepo()
	uc := NewSweepExpiredSessionsUseCase(repo, testLogger())

	removed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}
