package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ringgate/internal/domain/captcha"
	"ringgate/internal/infrastructure/persistence/models"
	"ringgate/internal/shared/biztime"
	"ringgate/internal/shared/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CaptchaSessionModel{}, &models.UserModel{}))
	return db
}

func newPersistedSession(t *testing.T, repo captcha.ChallengeSessionRepository, ttl time.Duration) *captcha.ChallengeSession {
	t.Helper()
	session, err := captcha.NewChallengeSession("203.0.113.7", 2, ttl)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), session))
	return session
}

func TestCaptchaSessionRepository_CreateAndGetActive(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))
	session := newPersistedSession(t, repo, 10*time.Minute)

	loaded, err := repo.GetActive(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, 2, loaded.SolutionIndex)
	assert.Equal(t, "203.0.113.7", loaded.IPAddress)
	assert.Zero(t, loaded.Attempts)
	assert.False(t, loaded.Verified)
	assert.Nil(t, loaded.VerificationToken)
}

func TestCaptchaSessionRepository_GetActive_Missing(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))

	_, err := repo.GetActive(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCaptchaSessionRepository_GetActive_ExpiredRowIsInvisible(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))
	session := newPersistedSession(t, repo, -time.Minute)

	_, err := repo.GetActive(context.Background(), session.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err), "expired and missing must be indistinguishable")
}

func TestCaptchaSessionRepository_IncrementAttempts(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))
	session := newPersistedSession(t, repo, 10*time.Minute)

	for want := 1; want <= 4; want++ {
		got, err := repo.IncrementAttempts(context.Background(), session.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCaptchaSessionRepository_IncrementAttempts_Missing(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))

	_, err := repo.IncrementAttempts(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCaptchaSessionRepository_MarkVerifiedAndGetByToken(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))
	session := newPersistedSession(t, repo, 10*time.Minute)

	token, err := captcha.NewVerificationToken()
	require.NoError(t, err)
	verifiedAt := biztime.NowUTC().Truncate(time.Second)

	require.NoError(t, repo.MarkVerified(context.Background(), session.ID, token, verifiedAt))

	loaded, err := repo.GetByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
	assert.True(t, loaded.Verified)
	require.NotNil(t, loaded.VerificationToken)
	assert.Equal(t, token, *loaded.VerificationToken)
	require.NotNil(t, loaded.VerifiedAt)
	assert.WithinDuration(t, verifiedAt, *loaded.VerifiedAt, time.Second)
}

func TestCaptchaSessionRepository_GetByToken_UnverifiedRowIsInvisible(t *testing.T) {
	db := newTestDB(t)
	repo := NewCaptchaSessionRepository(db)
	session := newPersistedSession(t, repo, 10*time.Minute)

	// Plant a token on an unverified row directly; GetByToken must not see it.
	token := "planted-token"
	require.NoError(t, db.Model(&models.CaptchaSessionModel{}).
		Where("id = ?", session.ID).
		Update("verification_token", token).Error)

	_, err := repo.GetByToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCaptchaSessionRepository_Delete(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))
	session := newPersistedSession(t, repo, 10*time.Minute)

	require.NoError(t, repo.Delete(context.Background(), session.ID))

	err := repo.Delete(context.Background(), session.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCaptchaSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewCaptchaSessionRepository(newTestDB(t))

	live := newPersistedSession(t, repo, 10*time.Minute)
	newPersistedSession(t, repo, -time.Minute)
	newPersistedSession(t, repo, -time.Hour)

	removed, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	_, err = repo.GetActive(context.Background(), live.ID)
	assert.NoError(t, err)
}
