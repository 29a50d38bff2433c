package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// InventoryRepository puerto de persistencia para ítems de inventario (DIP).
// Update y Delete retornan domain.ErrNotFound si el registro no existe: la
// deriva entre la vista y el store se detecta, no se absorbe en silencio.
type InventoryRepository interface {
	List() ([]entity.InventoryItem, error)
	GetByID(id string) (*entity.InventoryItem, error)
	FindByNameAndVendor(name, vendor string) (*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
