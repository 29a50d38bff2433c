package csvcodec

import (
	"strconv"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

// Esquema de columnas del CSV de BOM (solo exportación): una fila por línea,
// con faltante y costo de línea computados en lectura.
var bomColumns = []string{
	"BOM Name", "Item Name", "Required Quantity",
	"Unit Price", "Available Stock", "Shortfall", "Line Cost",
}

// BOMToCSV serializa uno o más BOM, una fila por línea de material.
func BOMToCSV(boms []entity.BOM) (string, error) {
	var rows [][]string
	for _, b := range boms {
		for _, item := range b.Items {
			rows = append(rows, []string{
				b.Name,
				item.ItemName,
				strconv.Itoa(item.RequiredQuantity),
				item.UnitPrice.String(),
				strconv.Itoa(item.AvailableStock),
				strconv.Itoa(item.Shortfall()),
				item.LineCost().String(),
			})
		}
	}
	return writeCSV(bomColumns, rows)
}
