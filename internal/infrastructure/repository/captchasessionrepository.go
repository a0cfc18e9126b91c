package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ringgate/internal/domain/captcha"
	"ringgate/internal/infrastructure/persistence/mappers"
	"ringgate/internal/infrastructure/persistence/models"
	"ringgate/internal/shared/biztime"
	"ringgate/internal/shared/errors"
)

type CaptchaSessionRepository struct {
	db     *gorm.DB
	mapper mappers.CaptchaSessionMapper
}

func NewCaptchaSessionRepository(db *gorm.DB) captcha.ChallengeSessionRepository {
	return &CaptchaSessionRepository{
		db:     db,
		mapper: mappers.NewCaptchaSessionMapper(),
	}
}

func (r *CaptchaSessionRepository) Create(ctx context.Context, session *captcha.ChallengeSession) error {
	model := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create challenge session: %w", err)
	}
	return nil
}

func (r *CaptchaSessionRepository) GetActive(ctx context.Context, sessionID string) (*captcha.ChallengeSession, error) {
	var model models.CaptchaSessionModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", sessionID, biztime.NowUTC()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("challenge session not found")
		}
		return nil, fmt.Errorf("failed to get challenge session: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// IncrementAttempts bumps the attempt counter with a single atomic UPDATE
// and reads the new value inside the same transaction, so two concurrent
// calls can never observe the same pre-increment count.
func (r *CaptchaSessionRepository) IncrementAttempts(ctx context.Context, sessionID string) (int, error) {
	var attempts int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CaptchaSessionModel{}).
			Where("id = ?", sessionID).
			UpdateColumn("attempts", gorm.Expr("attempts + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("failed to increment attempts: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("challenge session not found")
		}

		return tx.Model(&models.CaptchaSessionModel{}).
			Select("attempts").
			Where("id = ?", sessionID).
			Scan(&attempts).Error
	})
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

func (r *CaptchaSessionRepository) MarkVerified(ctx context.Context, sessionID, token string, verifiedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.CaptchaSessionModel{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"verified":           true,
			"verification_token": token,
			"verified_at":        verifiedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark challenge session verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("challenge session not found")
	}
	return nil
}

func (r *CaptchaSessionRepository) GetByToken(ctx context.Context, token string) (*captcha.ChallengeSession, error) {
	var model models.CaptchaSessionModel
	err := r.db.WithContext(ctx).
		Where("verification_token = ? AND verified = ?", token, true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("challenge session not found")
		}
		return nil, fmt.Errorf("failed to get challenge session by token: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CaptchaSessionRepository) Delete(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", sessionID).
		Delete(&models.CaptchaSessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete challenge session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("challenge session not found")
	}
	return nil
}

func (r *CaptchaSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", biztime.NowUTC()).
		Delete(&models.CaptchaSessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired challenge sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
