package repository

import (
	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// UserRepository defines data access for admin and judge accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Delete(id uint) error
}
