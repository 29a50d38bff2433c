package entity

import "time"

// Tipos de notificación.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationSuccess = "success"
)

// NotificationTypes valores admitidos para Notification.Type.
var NotificationTypes = []string{NotificationInfo, NotificationWarning, NotificationError, NotificationSuccess}

// NotificationPriorities valores admitidos para Notification.Priority
// (comparte escala con la urgencia de solicitudes).
var NotificationPriorities = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// Notification aviso dirigido al tablero del usuario.
type Notification struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	Type            string    `json:"type"`
	Priority        string    `json:"priority"`
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"createdAt"`
	RelatedItemID   string    `json:"relatedItemId,omitempty"`
	RelatedItemType string    `json:"relatedItemType,omitempty"`
	ActionURL       string    `json:"actionUrl,omitempty"`
}
