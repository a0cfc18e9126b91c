package migration

import (
	"ringgate/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CaptchaSessionModel{},
		&models.UserModel{},
	}
}
