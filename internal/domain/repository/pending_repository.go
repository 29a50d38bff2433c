package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// PendingRepository puerto de persistencia para inventario pendiente de
// recepción. Update y Delete retornan domain.ErrNotFound si el registro no existe.
type PendingRepository interface {
	List() ([]entity.PendingItem, error)
	GetByID(id string) (*entity.PendingItem, error)
	Create(item *entity.PendingItem) error
	Update(item *entity.PendingItem) error
	Delete(id string) error
}
