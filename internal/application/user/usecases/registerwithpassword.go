package usecases

import (
	"context"

	"ringgate/internal/application/user/dto"
	"ringgate/internal/domain/user"
	apperrors "ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Email    string
	Password string
}

// RegisterWithPasswordUseCase creates a storefront account. The handler in
// front of it has already redeemed a CAPTCHA token.
type RegisterWithPasswordUseCase struct {
	users  user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

func NewRegisterWithPasswordUseCase(
	users user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}

	newUser, err := user.NewUser(cmd.Email, hash)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email address")
	}

	exists, err := uc.users.ExistsByEmail(ctx, newUser.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}
	if exists {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	}

	if err := uc.users.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "email", newUser.Email, "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID, "email", newUser.Email)

	result := dto.ToUserDTO(newUser)
	return &result, nil
}
