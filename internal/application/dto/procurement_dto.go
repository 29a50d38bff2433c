package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

// CreatePurchaseRequestRequest alta de solicitud de compra.
type CreatePurchaseRequestRequest struct {
	ItemName           string          `json:"itemName" validate:"required"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Type               string          `json:"type"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Quantity           int             `json:"quantity" validate:"min=1"`
	Urgency            string          `json:"urgency"`
	Vendor             string          `json:"vendor" validate:"required"`
	RequestedBy        string          `json:"requestedBy" validate:"required"`
	Team               string          `json:"team"`
	Notes              string          `json:"notes"`
	EisenhowerQuadrant string          `json:"eisenhowerQuadrant"`
}

// UpdatePurchaseRequestRequest patch parcial de una solicitud.
type UpdatePurchaseRequestRequest struct {
	ItemName           *string          `json:"itemName"`
	Title              *string          `json:"title"`
	Description        *string          `json:"description"`
	Type               *string          `json:"type"`
	UnitPrice          *decimal.Decimal `json:"unitPrice"`
	Quantity           *int             `json:"quantity"`
	Urgency            *string          `json:"urgency"`
	Vendor             *string          `json:"vendor"`
	Team               *string          `json:"team"`
	Notes              *string          `json:"notes"`
	EisenhowerQuadrant *string          `json:"eisenhowerQuadrant"`
}

// RejectRequestRequest motivo opcional del rechazo.
type RejectRequestRequest struct {
	Notes string `json:"notes"`
}

// PurchaseRequestResponse representación de salida de una solicitud.
type PurchaseRequestResponse struct {
	ID                 string          `json:"id"`
	ItemName           string          `json:"itemName"`
	Title              string          `json:"title,omitempty"`
	Description        string          `json:"description,omitempty"`
	Type               string          `json:"type,omitempty"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Quantity           int             `json:"quantity"`
	Urgency            string          `json:"urgency"`
	Vendor             string          `json:"vendor"`
	RequestedBy        string          `json:"requestedBy"`
	RequestedDate      time.Time       `json:"requestedDate"`
	Status             string          `json:"status"`
	ApprovedBy         string          `json:"approvedBy,omitempty"`
	ApprovedDate       *time.Time      `json:"approvedDate,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	Team               string          `json:"team"`
	EisenhowerQuadrant string          `json:"eisenhowerQuadrant,omitempty"`
}

// PurchaseRequestListResponse listado de solicitudes.
type PurchaseRequestListResponse struct {
	Items []PurchaseRequestResponse `json:"items"`
	Total int                       `json:"total"`
}

// ToPurchaseRequestResponse convierte la entidad a su representación de salida.
func ToPurchaseRequestResponse(r *entity.PurchaseRequest) *PurchaseRequestResponse {
	if r == nil {
		return nil
	}
	return &PurchaseRequestResponse{
		ID:                 r.ID,
		ItemName:           r.ItemName,
		Title:              r.Title,
		Description:        r.Description,
		Type:               r.Type,
		UnitPrice:          r.UnitPrice,
		Quantity:           r.Quantity,
		Urgency:            r.Urgency,
		Vendor:             r.Vendor,
		RequestedBy:        r.RequestedBy,
		RequestedDate:      r.RequestedDate,
		Status:             r.Status,
		ApprovedBy:         r.ApprovedBy,
		ApprovedDate:       r.ApprovedDate,
		Notes:              r.Notes,
		Team:               r.Team,
		EisenhowerQuadrant: r.EisenhowerQuadrant,
	}
}

// EditPendingRequest patch parcial de un ítem pendiente de recepción.
type EditPendingRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	UnitPrice        *decimal.Decimal `json:"unitPrice"`
	ExpectedQuantity *int             `json:"expectedQuantity"`
}

// ConfirmReceiptRequest confirmación de recepción de un pendiente.
type ConfirmReceiptRequest struct {
	ActualQuantity *int   `json:"actualQuantity"`
	Condition      string `json:"condition"`
	QualityNotes   string `json:"qualityNotes"`
}

// PendingItemResponse representación de salida de un pendiente.
type PendingItemResponse struct {
	ID                 string          `json:"id"`
	RequestID          string          `json:"requestId,omitempty"`
	InventoryID        string          `json:"inventoryId,omitempty"`
	Name               string          `json:"name"`
	Category           string          `json:"category,omitempty"`
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

// ToPendingItemResponse convierte la entidad a su representación de salida.
func ToPendingItemResponse(p *entity.PendingItem) *PendingItemResponse {
	if p == nil {
		return nil
	}
	return &PendingItemResponse{
		ID:                 p.ID,
		RequestID:          p.RequestID,
		InventoryID:        p.InventoryID,
		Name:               p.Name,
		Category:           p.Category,
		Vendor:             p.Vendor,
		Description:        p.Description,
		UnitPrice:          p.UnitPrice,
		ExpectedQuantity:   p.ExpectedQuantity,
		Priority:           p.Priority,
		EisenhowerQuadrant: p.EisenhowerQuadrant,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		UpdatedBy:          p.UpdatedBy,
	}
}

// ReceivingLogResponse entrada del registro de recepciones.
type ReceivingLogResponse struct {
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
