package blob

import (
	"strings"

	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre el blob store.
type InventoryRepo struct {
	store *Store
}

// NewInventoryRepository construye el adaptador de inventario.
func NewInventoryRepository(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

func (r *InventoryRepo) load() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := r.store.Load(KeyInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List devuelve la colección completa.
func (r *InventoryRepo) List() ([]entity.InventoryItem, error) {
	return r.load()
}

// GetByID devuelve el ítem o nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
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

// FindByNameAndVendor busca el ítem lógico por nombre+proveedor (sin
// distinguir mayúsculas), usado por la conciliación de recepciones.
func (r *InventoryRepo) FindByNameAndVendor(name, vendor string) (*entity.InventoryItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if strings.EqualFold(items[i].Name, name) && strings.EqualFold(items[i].Vendor, vendor) {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Create agrega el ítem y reescribe la colección completa.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyInventory, append(items, *item))
}

// Update reemplaza por identidad. ErrNotFound si el registro ya no existe.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.store.Save(KeyInventory, items)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por identidad. ErrNotFound si el registro ya no existe.
func (r *InventoryRepo) Delete(id string) error {
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
	return r.store.Save(KeyInventory, kept)
}
