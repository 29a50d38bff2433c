package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingItem representa mercancía pedida pero aún no confirmada en bodega.
// Misma forma que InventoryItem pero con la cantidad *esperada*; al conciliar
// la recepción se destruye y el stock real pasa a InventoryItem.
type PendingItem struct {
	ID                 string          `json:"id"`
	RequestID          string          `json:"requestId,omitempty"`   // solicitud de compra de origen
	InventoryID        string          `json:"inventoryId,omitempty"` // ítem de inventario ya existente, si se conoce
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Vendor             string          `json:"vendor"`
	Description        string          `json:"description,omitempty"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	ExpectedQuantity   int             `json:"expectedQuantity"`
	Priority           string          `json:"priority"`
	EisenhowerQuadrant string          `json:"eisenhowerQuadrant,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	UpdatedBy          string          `json:"updatedBy"`
}
