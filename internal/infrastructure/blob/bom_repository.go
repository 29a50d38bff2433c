package blob

import (
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación del puerto BOMRepository sobre el blob store.
type BOMRepo struct {
	store *Store
}

// NewBOMRepository construye el adaptador de BOM.
func NewBOMRepository(store *Store) *BOMRepo {
	return &BOMRepo{store: store}
}

func (r *BOMRepo) load() ([]entity.BOM, error) {
	var boms []entity.BOM
	if err := r.store.Load(KeyBOM, &boms); err != nil {
		return nil, err
	}
	return boms, nil
}

// List devuelve la colección completa.
func (r *BOMRepo) List() ([]entity.BOM, error) {
	return r.load()
}

// GetByID devuelve el BOM o nil si no existe.
func (r *BOMRepo) GetByID(id string) (*entity.BOM, error) {
	boms, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range boms {
		if boms[i].ID == id {
			return &boms[i], nil
		}
	}
	return nil, nil
}

// Create agrega el BOM y reescribe la colección completa.
func (r *BOMRepo) Create(bom *entity.BOM) error {
	boms, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyBOM, append(boms, *bom))
}

// Update reemplaza por identidad. ErrNotFound si el registro ya no existe.
func (r *BOMRepo) Update(bom *entity.BOM) error {
	boms, err := r.load()
	if err != nil {
		return err
	}
	for i := range boms {
		if boms[i].ID == bom.ID {
			boms[i] = *bom
			return r.store.Save(KeyBOM, boms)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por identidad. ErrNotFound si el registro ya no existe.
func (r *BOMRepo) Delete(id string) error {
	boms, err := r.load()
	if err != nil {
		return err
	}
	kept := boms[:0]
	for _, b := range boms {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(boms) {
		return domain.ErrNotFound
	}
	return r.store.Save(KeyBOM, kept)
}
