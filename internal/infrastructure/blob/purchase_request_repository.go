package blob

import (
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.PurchaseRequestRepository = (*PurchaseRequestRepo)(nil)

// PurchaseRequestRepo implementación del puerto PurchaseRequestRepository
// sobre el blob store.
type PurchaseRequestRepo struct {
	store *Store
}

// NewPurchaseRequestRepository construye el adaptador de solicitudes de compra.
func NewPurchaseRequestRepository(store *Store) *PurchaseRequestRepo {
	return &PurchaseRequestRepo{store: store}
}

func (r *PurchaseRequestRepo) load() ([]entity.PurchaseRequest, error) {
	var requests []entity.PurchaseRequest
	if err := r.store.Load(KeyPurchaseRequests, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// List devuelve la colección completa.
func (r *PurchaseRequestRepo) List() ([]entity.PurchaseRequest, error) {
	return r.load()
}

// GetByID devuelve la solicitud o nil si no existe.
func (r *PurchaseRequestRepo) GetByID(id string) (*entity.PurchaseRequest, error) {
	requests, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, nil
}

// Create agrega la solicitud y reescribe la colección completa.
func (r *PurchaseRequestRepo) Create(request *entity.PurchaseRequest) error {
	requests, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyPurchaseRequests, append(requests, *request))
}

// Update reemplaza por identidad. ErrNotFound si el registro ya no existe.
func (r *PurchaseRequestRepo) Update(request *entity.PurchaseRequest) error {
	requests, err := r.load()
	if err != nil {
		return err
	}
	for i := range requests {
		if requests[i].ID == request.ID {
			requests[i] = *request
			return r.store.Save(KeyPurchaseRequests, requests)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por identidad. ErrNotFound si el registro ya no existe.
func (r *PurchaseRequestRepo) Delete(id string) error {
	requests, err := r.load()
	if err != nil {
		return err
	}
	kept := requests[:0]
	for _, req := range requests {
		if req.ID != id {
			kept = append(kept, req)
		}
	}
	if len(kept) == len(requests) {
		return domain.ErrNotFound
	}
	return r.store.Save(KeyPurchaseRequests, kept)
}
