package handlers

import (
	"context"

	userdto "ringgate/internal/application/user/dto"
	"ringgate/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*userdto.UserDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*userdto.AuthResultDTO, error)
}
