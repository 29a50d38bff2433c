package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridad operativa de un ítem de inventario.
const (
	PriorityUrgent    = "urgent"
	PriorityImportant = "important"
	PriorityNormal    = "normal"
	PriorityLow       = "low"
)

// Cuadrante Eisenhower (urgencia × importancia). Sin valor por defecto:
// un cuadrante inválido queda vacío en lugar de adivinar uno.
const (
	QuadrantImportantUrgent       = "important-urgent"
	QuadrantImportantNotUrgent    = "important-not-urgent"
	QuadrantNotImportantUrgent    = "not-important-urgent"
	QuadrantNotImportantNotUrgent = "not-important-not-urgent"
)

// Priorities valores admitidos para Priority; el primero NO es el default.
var Priorities = []string{PriorityUrgent, PriorityImportant, PriorityNormal, PriorityLow}

// Quadrants valores admitidos para EisenhowerQuadrant.
var Quadrants = []string{
	QuadrantImportantUrgent,
	QuadrantImportantNotUrgent,
	QuadrantNotImportantUrgent,
	QuadrantNotImportantNotUrgent,
}

// InventoryItem representa stock confirmado en bodega.
// Invariantes: CurrentStock >= 0, UnitPrice >= 0.
type InventoryItem struct {
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
	LastUpdated        time.Time       `json:"lastUpdated"`
	UpdatedBy          string          `json:"updatedBy"`
}

// BelowReorderPoint indica si el stock actual cayó al punto de reorden o por debajo.
func (i InventoryItem) BelowReorderPoint() bool {
	return i.CurrentStock <= i.ReorderPoint
}
