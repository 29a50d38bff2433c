package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

// BOMItemInput línea de materiales en una petición de alta/edición.
type BOMItemInput struct {
	ItemName         string          `json:"itemName" validate:"required"`
	InventoryItemID  string          `json:"inventoryItemId"`
	RequiredQuantity int             `json:"requiredQuantity" validate:"min=0"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
}

// CreateBOMRequest alta de bill of materials.
type CreateBOMRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Items       []BOMItemInput `json:"items"`
}

// UpdateBOMRequest patch de un BOM (las líneas se reemplazan completas).
type UpdateBOMRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Items       *[]BOMItemInput `json:"items"`
}

// BOMItemResponse línea con faltante y costo computados en lectura.
type BOMItemResponse struct {
	ItemName         string          `json:"itemName"`
	InventoryItemID  string          `json:"inventoryItemId,omitempty"`
	RequiredQuantity int             `json:"requiredQuantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	AvailableStock   int             `json:"availableStock"`
	Shortfall        int             `json:"shortfall"`
	LineCost         decimal.Decimal `json:"lineCost"`
}

// BOMResponse representación de salida de un BOM con costo total computado.
type BOMResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Items       []BOMItemResponse `json:"items"`
	TotalCost   decimal.Decimal   `json:"totalCost"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	CreatedBy   string            `json:"createdBy"`
}

// BOMListResponse listado de BOM.
type BOMListResponse struct {
	Items []BOMResponse `json:"items"`
	Total int           `json:"total"`
}

// ToBOMResponse convierte la entidad computando faltantes y costos.
func ToBOMResponse(b *entity.BOM) *BOMResponse {
	if b == nil {
		return nil
	}
	items := make([]BOMItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, BOMItemResponse{
			ItemName:         item.ItemName,
			InventoryItemID:  item.InventoryItemID,
			RequiredQuantity: item.RequiredQuantity,
			UnitPrice:        item.UnitPrice,
			AvailableStock:   item.AvailableStock,
			Shortfall:        item.Shortfall(),
			LineCost:         item.LineCost(),
		})
	}
	return &BOMResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Items:       items,
		TotalCost:   b.TotalCost(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		CreatedBy:   b.CreatedBy,
	}
}
