package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// BOMRepository puerto de persistencia para bills of materials.
type BOMRepository interface {
	List() ([]entity.BOM, error)
	GetByID(id string) (*entity.BOM, error)
	Create(bom *entity.BOM) error
	Update(bom *entity.BOM) error
	Delete(id string) error
}
