package csvcodec

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// Esquema de columnas del CSV de inventario, en orden fijo.
var inventoryColumns = []string{
	"Item Name", "Category", "Vendor", "Description",
	"Unit Price", "Current Stock", "Quantity", "Reorder Point",
	"Priority", "Eisenhower Quadrant", "Last Updated",
}

// Columnas sin las cuales la importación de inventario aborta el lote.
var inventoryRequired = []string{"Item Name", "Category", "Vendor"}

// InventoryToCSV serializa ítems de inventario: una fila por registro, fechas
// como YYYY-MM-DD, opcionales ausentes como cadena vacía.
func InventoryToCSV(items []entity.InventoryItem) (string, error) {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Name,
			it.Category,
			it.Vendor,
			it.Description,
			it.UnitPrice.String(),
			strconv.Itoa(it.CurrentStock),
			strconv.Itoa(it.Quantity),
			strconv.Itoa(it.ReorderPoint),
			it.Priority,
			it.EisenhowerQuadrant,
			it.LastUpdated.Format(DateLayout),
		})
	}
	return writeCSV(inventoryColumns, rows)
}

// InventoryFromCSV parsea el CSV a ítems validados. Cada registro recibe una
// identidad nueva (la importación nunca conserva ni mezcla por id externo) y
// el sello UpdatedBy = "CSV Import". Falla con *ImportError si un campo
// requerido falta; todo lo demás degrada a defaults.
func InventoryFromCSV(data []byte) ([]entity.InventoryItem, error) {
	t, err := readTable(data)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns(inventoryRequired...); err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]entity.InventoryItem, 0, len(t.rows))
	for n, row := range t.rows {
		for _, col := range inventoryRequired {
			if t.get(row, col) == "" {
				return nil, &ImportError{Row: n + 1, Field: col}
			}
		}
		items = append(items, entity.InventoryItem{
			ID:                 uuid.New().String(),
			Name:               t.get(row, "Item Name"),
			Category:           t.get(row, "Category"),
			Vendor:             t.get(row, "Vendor"),
			Description:        t.get(row, "Description"),
			UnitPrice:          validate.Decimal(t.get(row, "Unit Price"), decimal.Zero),
			CurrentStock:       validate.Int(t.get(row, "Current Stock"), 0),
			Quantity:           validate.Int(t.get(row, "Quantity"), 0),
			ReorderPoint:       validate.Int(t.get(row, "Reorder Point"), 0),
			Priority:           validate.Enum(t.get(row, "Priority"), entity.Priorities, entity.PriorityNormal),
			EisenhowerQuadrant: validate.Enum(t.get(row, "Eisenhower Quadrant"), entity.Quadrants, ""),
			LastUpdated:        validate.Date(t.get(row, "Last Updated"), now),
			UpdatedBy:          ImportedBy,
		})
	}
	return items, nil
}
