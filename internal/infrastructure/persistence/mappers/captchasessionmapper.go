package mappers

import (
	"ringgate/internal/domain/captcha"
	"ringgate/internal/infrastructure/persistence/models"
)

// CaptchaSessionMapper handles the conversion between ChallengeSession
// domain entities and persistence models.
type CaptchaSessionMapper interface {
	ToModel(entity *captcha.ChallengeSession) *models.CaptchaSessionModel
	ToDomain(model *models.CaptchaSessionModel) *captcha.ChallengeSession
}

type CaptchaSessionMapperImpl struct{}

func NewCaptchaSessionMapper() CaptchaSessionMapper {
	return &CaptchaSessionMapperImpl{}
}

func (m *CaptchaSessionMapperImpl) ToModel(entity *captcha.ChallengeSession) *models.CaptchaSessionModel {
	if entity == nil {
		return nil
	}
	return &models.CaptchaSessionModel{
		ID:                entity.ID,
		SolutionIndex:     entity.SolutionIndex,
		IPAddress:         entity.IPAddress,
		Attempts:          entity.Attempts,
		Verified:          entity.Verified,
		VerificationToken: entity.VerificationToken,
		VerifiedAt:        entity.VerifiedAt,
		CreatedAt:         entity.CreatedAt,
		ExpiresAt:         entity.ExpiresAt,
	}
}

func (m *CaptchaSessionMapperImpl) ToDomain(model *models.CaptchaSessionModel) *captcha.ChallengeSession {
	if model == nil {
		return nil
	}
	return &captcha.ChallengeSession{
		ID:                model.ID,
		SolutionIndex:     model.SolutionIndex,
		IPAddress:         model.IPAddress,
		Attempts:          model.Attempts,
		Verified:          model.Verified,
		VerificationToken: model.VerificationToken,
		VerifiedAt:        model.VerifiedAt,
		CreatedAt:         model.CreatedAt,
		ExpiresAt:         model.ExpiresAt,
	}
}
