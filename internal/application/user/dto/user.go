package dto

import (
	"ringgate/internal/domain/user"
	"ringgate/internal/shared/biztime"
)

type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// AuthResultDTO is returned on successful login.
type AuthResultDTO struct {
	User        UserDTO `json:"user"`
	AccessToken string  `json:"accessToken"`
	ExpiresIn   int64   `json:"expiresIn"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: biztime.FormatRFC3339(u.CreatedAt),
	}
}
