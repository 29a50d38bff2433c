package blob

import (
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.PendingRepository = (*PendingRepo)(nil)

// PendingRepo implementación del puerto PendingRepository sobre el blob store.
type PendingRepo struct {
	store *Store
}

// NewPendingRepository construye el adaptador de inventario pendiente.
func NewPendingRepository(store *Store) *PendingRepo {
	return &PendingRepo{store: store}
}

func (r *PendingRepo) load() ([]entity.PendingItem, error) {
	var items []entity.PendingItem
	if err := r.store.Load(KeyPendingInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List devuelve la colección completa.
func (r *PendingRepo) List() ([]entity.PendingItem, error) {
	return r.load()
}

// GetByID devuelve el pendiente o nil si no existe.
func (r *PendingRepo) GetByID(id string) (*entity.PendingItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Create agrega el pendiente y reescribe la colección completa.
func (r *PendingRepo) Create(item *entity.PendingItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyPendingInventory, append(items, *item))
}

// Update reemplaza por identidad. ErrNotFound si el registro ya no existe.
func (r *PendingRepo) Update(item *entity.PendingItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.store.Save(KeyPendingInventory, items)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por identidad. ErrNotFound si el registro ya no existe.
func (r *PendingRepo) Delete(id string) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrNotFound
	}
	return r.store.Save(KeyPendingInventory, kept)
}
