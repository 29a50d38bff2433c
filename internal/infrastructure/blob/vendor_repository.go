package blob

import (
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre el blob store.
type VendorRepo struct {
	store *Store
}

// NewVendorRepository construye el adaptador de proveedores.
func NewVendorRepository(store *Store) *VendorRepo {
	return &VendorRepo{store: store}
}

func (r *VendorRepo) load() ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	if err := r.store.Load(KeyVendors, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// List devuelve la colección completa.
func (r *VendorRepo) List() ([]entity.Vendor, error) {
	return r.load()
}

// GetByID devuelve el proveedor o nil si no existe.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	vendors, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		if vendors[i].ID == id {
			return &vendors[i], nil
		}
	}
	return nil, nil
}

// Create agrega el proveedor y reescribe la colección completa.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	vendors, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyVendors, append(vendors, *vendor))
}

// Update reemplaza por identidad. ErrNotFound si el registro ya no existe.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	vendors, err := r.load()
	if err != nil {
		return err
	}
	for i := range vendors {
		if vendors[i].ID == vendor.ID {
			vendors[i] = *vendor
			return r.store.Save(KeyVendors, vendors)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por identidad. ErrNotFound si el registro ya no existe.
func (r *VendorRepo) Delete(id string) error {
	vendors, err := r.load()
	if err != nil {
		return err
	}
	kept := vendors[:0]
	for _, v := range vendors {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vendors) {
		return domain.ErrNotFound
	}
	return r.store.Save(KeyVendors, kept)
}
