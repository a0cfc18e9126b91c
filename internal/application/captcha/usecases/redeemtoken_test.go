package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringgate/internal/shared/biztime"
	apperrors "ringgate/internal/shared/errors"
)

func solveChallenge(t *testing.T, repo *memorySessionRepo) (sessionID, token string) {
	t.Helper()
	session := newStoredSession(t, repo, 1)

	result, err := NewVerifyChallengeUseCase(repo, testLogger()).
		Execute(context.Background(), VerifyChallengeCommand{SessionID: session.ID, SelectedIndex: 1})
	require.NoError(t, err)
	require.True(t, result.Verified)
	return session.ID, result.Token
}

func TestRedeemTokenUseCase_SingleUse(t *testing.T) {
	repo := newMemorySessionRepo()
	uc := NewRedeemTokenUseCase(repo, 5*time.Minute, testLogger())
	sessionID, token := solveChallenge(t, repo)

	require.NoError(t, uc.Execute(context.Background(), token))
	assert.Nil(t, repo.get(sessionID), "redemption must consume the session")

	// Second redemption of the same token is refused.
	err := uc.Execute(context.Background(), token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestRedeemTokenUseCase_MissingToken(t *testing.T) {
	uc := NewRedeemTokenUseCase(newMemorySessionRepo(), 5*time.Minute, testLogger())

	err := uc.Execute(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestRedeemTokenUseCase_InvalidToken(t *testing.T) {
	uc := NewRedeemTokenUseCase(newMemorySessionRepo(), 5*time.Minute, testLogger())

	err := uc.Execute(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestRedeemTokenUseCase_ExpiredTokenDeletesSession(t *testing.T) {
	repo := newMemorySessionRepo()
	uc := NewRedeemTokenUseCase(repo, 5*time.Minute, testLogger())
	sessionID, token := solveChallenge(t, repo)

	// Age the token past the freshness window while the session row itself
	// is still live.
	stale := biztime.NowUTC().Add(-6 * time.Minute)
	repo.get(sessionID).VerifiedAt = &stale

	err := uc.Execute(context.Background(), token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorizedError(err))
	assert.Nil(t, repo.get(sessionID), "stale token redemption must delete the session")
}

func TestRedeemTokenUseCase_FreshTokenWithinWindow(t *testing.T) {
	repo := newMemorySessionRepo()
	uc := NewRedeemTokenUseCase(repo, 5*time.Minute, testLogger())
	_, token := solveChallenge(t, repo)

	assert.NoError(t, uc.Execute(context.Background(), token))
}

func TestRedeemTokenUseCase_ConsumeFailureRefusesAction(t *testing.T) {
	repo := newMemorySessionRepo()
	uc := NewRedeemTokenUseCase(repo, 5*time.Minute, testLogger())
	_, token := solveChallenge(t, repo)

	repo.failDelete = true

	err := uc.Execute(context.Background(), token)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
