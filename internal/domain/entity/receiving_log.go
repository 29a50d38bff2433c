package entity

import "time"

// Condición de la mercancía al recibirla.
const (
	ConditionGood    = "good"
	ConditionDamaged = "damaged"
	ConditionPartial = "partial"
)

// Conditions valores admitidos para ReceivingLog.Condition.
var Conditions = []string{ConditionGood, ConditionDamaged, ConditionPartial}

// ReceivingLog registro de auditoría de una conciliación de recepción.
// La condición y las notas de calidad no viven en InventoryItem: este es su
// destino persistente.
type ReceivingLog struct {
	ID               string    `json:"id"`
	PendingItemID    string    `json:"pendingItemId"`
	InventoryItemID  string    `json:"inventoryItemId"`
	ItemName         string    `json:"itemName"`
	Vendor           string    `json:"vendor"`
	ExpectedQuantity int       `json:"expectedQuantity"`
	ActualQuantity   int       `json:"actualQuantity"`
	Condition        string    `json:"condition"`
	QualityNotes     string    `json:"qualityNotes,omitempty"`
	ReceivedBy       string    `json:"receivedBy"`
	ReceivedAt       time.Time `json:"receivedAt"`
}
