package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// VendorRepository puerto de persistencia para proveedores.
type VendorRepository interface {
	List() ([]entity.Vendor, error)
	GetByID(id string) (*entity.Vendor, error)
	Create(vendor *entity.Vendor) error
	Update(vendor *entity.Vendor) error
	Delete(id string) error
}
