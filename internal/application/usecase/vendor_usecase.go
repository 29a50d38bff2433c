package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// VendorUseCase casos de uso de proveedores.
type VendorUseCase struct {
	repo  repository.VendorRepository
	cache ViewCache
}

func NewVendorUseCase(repo repository.VendorRepository, cache ViewCache) *VendorUseCase {
	return &VendorUseCase{repo: repo, cache: cache}
}

// validatePaymentMethods rechaza canales de pago desconocidos.
func validatePaymentMethods(methods []entity.PaymentMethod) error {
	for _, m := range methods {
		if validate.Enum(m.Method, entity.PaymentMethodKinds, "") == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// List devuelve el listado completo, sirviendo la vista cacheada si existe.
func (uc *VendorUseCase) List(ctx context.Context) (*dto.VendorListResponse, error) {
	if payload, ok := uc.cache.Get(ctx, colVendors); ok {
		var cached dto.VendorListResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	vendors, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("error al listar proveedores: %w", err)
	}
	resp := &dto.VendorListResponse{Items: make([]dto.VendorResponse, 0, len(vendors)), Total: len(vendors)}
	for i := range vendors {
		resp.Items = append(resp.Items, *dto.ToVendorResponse(&vendors[i]))
	}
	if payload, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, colVendors, payload)
	}
	return resp, nil
}

// GetByID devuelve un proveedor por su ID.
func (uc *VendorUseCase) GetByID(_ context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener proveedor: %w", err)
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToVendorResponse(vendor), nil
}

// Create da de alta un proveedor activo. El rating se ajusta al rango [0, 5].
func (uc *VendorUseCase) Create(ctx context.Context, in *dto.CreateVendorRequest, actor string) (*dto.VendorResponse, error) {
	if err := validatePaymentMethods(in.PaymentMethods); err != nil {
		return nil, err
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:             uuid.NewString(),
		Name:           in.Name,
		CompanyName:    in.CompanyName,
		ContactPerson:  in.ContactPerson,
		Email:          in.Email,
		Phone:          in.Phone,
		Location:       in.Location,
		PaymentMethods: in.PaymentMethods,
		Category:       in.Category,
		Rating:         validate.Rating(in.Rating),
		Notes:          in.Notes,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      actor,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, fmt.Errorf("error al crear proveedor: %w", err)
	}
	uc.cache.Invalidate(ctx, colVendors)
	return dto.ToVendorResponse(vendor), nil
}

// Update aplica un patch parcial.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener proveedor: %w", err)
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.CompanyName != nil {
		vendor.CompanyName = *in.CompanyName
	}
	if in.ContactPerson != nil {
		vendor.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Location != nil {
		vendor.Location = *in.Location
	}
	if in.PaymentMethods != nil {
		if err := validatePaymentMethods(*in.PaymentMethods); err != nil {
			return nil, err
		}
		vendor.PaymentMethods = *in.PaymentMethods
	}
	if in.Category != nil {
		vendor.Category = *in.Category
	}
	if in.Rating != nil {
		vendor.Rating = validate.Rating(*in.Rating)
	}
	if in.Notes != nil {
		vendor.Notes = *in.Notes
	}
	vendor.UpdatedAt = time.Now()

	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colVendors)
	return dto.ToVendorResponse(vendor), nil
}

// ToggleActive alterna el estado activo sin tocar el resto del registro.
func (uc *VendorUseCase) ToggleActive(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener proveedor: %w", err)
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	vendor.IsActive = !vendor.IsActive
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colVendors)
	return dto.ToVendorResponse(vendor), nil
}

// Delete elimina un proveedor; domain.ErrNotFound si no existe.
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, colVendors)
	return nil
}
