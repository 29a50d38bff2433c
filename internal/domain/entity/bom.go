package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItem una línea de un bill of materials. AvailableStock es una copia del
// stock conocido al momento de la última edición; Shortfall y LineCost se
// calculan siempre en lectura, nunca se almacenan.
type BOMItem struct {
	ItemName         string          `json:"itemName"`
	InventoryItemID  string          `json:"inventoryItemId,omitempty"`
	RequiredQuantity int             `json:"requiredQuantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	AvailableStock   int             `json:"availableStock"`
}

// Shortfall faltante = max(0, requerido - disponible).
func (i BOMItem) Shortfall() int {
	if i.RequiredQuantity > i.AvailableStock {
		return i.RequiredQuantity - i.AvailableStock
	}
	return 0
}

// LineCost costo de la línea = precio unitario × cantidad requerida.
func (i BOMItem) LineCost() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.RequiredQuantity)))
}

// BOM lista nombrada de partes requeridas para un ensamble.
type BOM struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Items       []BOMItem `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   string    `json:"createdBy"`
}

// TotalCost costo total = Σ(precio unitario × cantidad requerida).
// Fuente de verdad única: se computa en lectura para evitar deriva con
// cualquier valor denormalizado.
func (b BOM) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.LineCost())
	}
	return total
}
