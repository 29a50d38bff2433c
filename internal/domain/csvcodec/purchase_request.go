package csvcodec

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// Esquema de columnas del CSV de solicitudes de compra, en orden fijo.
var requestColumns = []string{
	"Item Name", "Title", "Description", "Type",
	"Unit Price", "Quantity", "Urgency", "Vendor",
	"Requested By", "Requested Date", "Status", "Team",
	"Notes", "Eisenhower Quadrant",
}

// Columnas sin las cuales la importación de solicitudes aborta el lote.
var requestRequired = []string{"Item Name", "Vendor", "Requested By"}

// RequestsToCSV serializa solicitudes de compra al esquema fijo.
func RequestsToCSV(requests []entity.PurchaseRequest) (string, error) {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			r.ItemName,
			r.Title,
			r.Description,
			r.Type,
			r.UnitPrice.String(),
			strconv.Itoa(r.Quantity),
			r.Urgency,
			r.Vendor,
			r.RequestedBy,
			r.RequestedDate.Format(DateLayout),
			r.Status,
			r.Team,
			r.Notes,
			r.EisenhowerQuadrant,
		})
	}
	return writeCSV(requestColumns, rows)
}

// RequestsFromCSV parsea el CSV a solicitudes validadas contra la lista de
// equipos configurada (un equipo desconocido cae al primero de la lista).
// Identidad nueva por registro; falla con *ImportError solo por campos
// requeridos ausentes.
func RequestsFromCSV(data []byte, teams []string) ([]entity.PurchaseRequest, error) {
	t, err := readTable(data)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns(requestRequired...); err != nil {
		return nil, err
	}

	defaultTeam := ""
	if len(teams) > 0 {
		defaultTeam = teams[0]
	}

	now := time.Now()
	requests := make([]entity.PurchaseRequest, 0, len(t.rows))
	for n, row := range t.rows {
		for _, col := range requestRequired {
			if t.get(row, col) == "" {
				return nil, &ImportError{Row: n + 1, Field: col}
			}
		}
		requests = append(requests, entity.PurchaseRequest{
			ID:                 uuid.New().String(),
			ItemName:           t.get(row, "Item Name"),
			Title:              t.get(row, "Title"),
			Description:        t.get(row, "Description"),
			Type:               t.get(row, "Type"),
			UnitPrice:          validate.Decimal(t.get(row, "Unit Price"), decimal.Zero),
			Quantity:           validate.Int(t.get(row, "Quantity"), 0),
			Urgency:            validate.Enum(t.get(row, "Urgency"), entity.Urgencies, entity.UrgencyMedium),
			Vendor:             t.get(row, "Vendor"),
			RequestedBy:        t.get(row, "Requested By"),
			RequestedDate:      validate.Date(t.get(row, "Requested Date"), now),
			Status:             validate.Enum(t.get(row, "Status"), entity.RequestStatuses, entity.RequestStatusPending),
			Team:               validate.EnumFold(t.get(row, "Team"), teams, defaultTeam),
			Notes:              t.get(row, "Notes"),
			EisenhowerQuadrant: validate.Enum(t.get(row, "Eisenhower Quadrant"), entity.Quadrants, ""),
		})
	}
	return requests, nil
}
