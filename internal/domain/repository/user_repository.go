package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Create(user *entity.User) error
}
