package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

// CreateInventoryItemRequest alta de ítem de inventario.
type CreateInventoryItemRequest struct {
	Name               string          `json:"name" validate:"required"`
	Category           string          `json:"category" validate:"required"`
	Vendor             string          `json:"vendor" validate:"required"`
	Description        string          `json:"description"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	CurrentStock       int             `json:"currentStock" validate:"min=0"`
	Quantity           int             `json:"quantity" validate:"min=0"`
	ReorderPoint       int             `json:"reorderPoint" validate:"min=0"`
	Priority           string          `json:"priority"`
	EisenhowerQuadrant string          `json:"eisenhowerQuadrant"`
}

// UpdateInventoryItemRequest patch parcial de un ítem (punteros = opcional).
type UpdateInventoryItemRequest struct {
	Name               *string          `json:"name"`
	Category           *string          `json:"category"`
	Vendor             *string          `json:"vendor"`
	Description        *string          `json:"description"`
	UnitPrice          *decimal.Decimal `json:"unitPrice"`
	CurrentStock       *int             `json:"currentStock"`
	Quantity           *int             `json:"quantity"`
	ReorderPoint       *int             `json:"reorderPoint"`
	Priority           *string          `json:"priority"`
	EisenhowerQuadrant *string          `json:"eisenhowerQuadrant"`
}

// InventoryItemResponse representación de salida de un ítem.
type InventoryItemResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Vendor             string          `json:"vendor"`
	Description        string          `json:"description,omitempty"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	CurrentStock       int             `json:"currentStock"`
	Quantity           int             `json:"quantity"`
	ReorderPoint       int             `json:"reorderPoint"`
	Priority           string          `json:"priority"`
	EisenhowerQuadrant string          `json:"eisenhowerQuadrant,omitempty"`
	LowStock           bool            `json:"lowStock"`
	LastUpdated        time.Time       `json:"lastUpdated"`
	UpdatedBy          string          `json:"updatedBy"`
}

// InventoryListResponse listado de inventario.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}

// ToInventoryItemResponse convierte la entidad a su representación de salida.
func ToInventoryItemResponse(i *entity.InventoryItem) *InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &InventoryItemResponse{
		ID:                 i.ID,
		Name:               i.Name,
		Category:           i.Category,
		Vendor:             i.Vendor,
		Description:        i.Description,
		UnitPrice:          i.UnitPrice,
		CurrentStock:       i.CurrentStock,
		Quantity:           i.Quantity,
		ReorderPoint:       i.ReorderPoint,
		Priority:           i.Priority,
		EisenhowerQuadrant: i.EisenhowerQuadrant,
		LowStock:           i.BelowReorderPoint(),
		LastUpdated:        i.LastUpdated,
		UpdatedBy:          i.UpdatedBy,
	}
}
