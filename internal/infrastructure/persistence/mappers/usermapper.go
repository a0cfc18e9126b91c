package mappers

import (
	"ringgate/internal/domain/user"
	"ringgate/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) *user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return &user.User{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
