package dto

import (
	"time"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

// CreateVendorRequest alta de proveedor.
type CreateVendorRequest struct {
	Name           string                 `json:"name" validate:"required"`
	CompanyName    string                 `json:"companyName"`
	ContactPerson  string                 `json:"contactPerson"`
	Email          string                 `json:"email" validate:"omitempty,email"`
	Phone          string                 `json:"phone"`
	Location       entity.Location        `json:"location"`
	PaymentMethods []entity.PaymentMethod `json:"paymentMethods"`
	Category       string                 `json:"category"`
	Rating         float64                `json:"rating"`
	Notes          string                 `json:"notes"`
}

// UpdateVendorRequest patch parcial de un proveedor.
type UpdateVendorRequest struct {
	Name           *string                 `json:"name"`
	CompanyName    *string                 `json:"companyName"`
	ContactPerson  *string                 `json:"contactPerson"`
	Email          *string                 `json:"email"`
	Phone          *string                 `json:"phone"`
	Location       *entity.Location        `json:"location"`
	PaymentMethods *[]entity.PaymentMethod `json:"paymentMethods"`
	Category       *string                 `json:"category"`
	Rating         *float64                `json:"rating"`
	Notes          *string                 `json:"notes"`
}

// VendorResponse representación de salida de un proveedor.
type VendorResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	CompanyName    string                 `json:"companyName"`
	ContactPerson  string                 `json:"contactPerson"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	Location       entity.Location        `json:"location"`
	PaymentMethods []entity.PaymentMethod `json:"paymentMethods"`
	Category       string                 `json:"category"`
	Rating         float64                `json:"rating"`
	Notes          string                 `json:"notes,omitempty"`
	IsActive       bool                   `json:"isActive"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	CreatedBy      string                 `json:"createdBy"`
}

// VendorListResponse listado de proveedores.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Total int              `json:"total"`
}

// ToVendorResponse convierte la entidad a su representación de salida.
func ToVendorResponse(v *entity.Vendor) *VendorResponse {
	if v == nil {
		return nil
	}
	return &VendorResponse{
		ID:             v.ID,
		Name:           v.Name,
		CompanyName:    v.CompanyName,
		ContactPerson:  v.ContactPerson,
		Email:          v.Email,
		Phone:          v.Phone,
		Location:       v.Location,
		PaymentMethods: v.PaymentMethods,
		Category:       v.Category,
		Rating:         v.Rating,
		Notes:          v.Notes,
		IsActive:       v.IsActive,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		CreatedBy:      v.CreatedBy,
	}
}
