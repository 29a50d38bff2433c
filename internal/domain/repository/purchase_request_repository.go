package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// PurchaseRequestRepository puerto de persistencia para solicitudes de compra.
type PurchaseRequestRepository interface {
	List() ([]entity.PurchaseRequest, error)
	GetByID(id string) (*entity.PurchaseRequest, error)
	Create(request *entity.PurchaseRequest) error
	Update(request *entity.PurchaseRequest) error
	Delete(id string) error
}
