package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Urgencia de una solicitud de compra.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Estados de una solicitud de compra.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
	RequestStatusOrdered  = "ordered"
)

// Urgencies valores admitidos para Urgency.
var Urgencies = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// RequestStatuses valores admitidos para Status.
var RequestStatuses = []string{RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusOrdered}

// PurchaseRequest representa una solicitud de compra de un equipo.
type PurchaseRequest struct {
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
