package usecases

import (
	"context"
	"strings"

	"ringgate/internal/application/user/dto"
	"ringgate/internal/domain/user"
	apperrors "ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

// LoginWithPasswordUseCase authenticates a storefront account and issues an
// access token. Failures are reported without distinguishing unknown email
// from wrong password.
type LoginWithPasswordUseCase struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
}

func NewLoginWithPasswordUseCase(
	users user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	account, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, apperrors.NewInternalError("login failed")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash); err != nil {
		uc.logger.Debugw("password verification failed", "user_id", account.ID)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Generate(account.ID, account.Email)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", account.ID, "error", err)
		return nil, apperrors.NewInternalError("login failed")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID)

	return &dto.AuthResultDTO{
		User:        dto.ToUserDTO(account),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
