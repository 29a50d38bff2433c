package dto

import (
	"time"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

// CreateNotificationRequest alta manual de notificación.
type CreateNotificationRequest struct {
	Title           string `json:"title" validate:"required"`
	Message         string `json:"message" validate:"required"`
	Type            string `json:"type"`
	Priority        string `json:"priority"`
	RelatedItemID   string `json:"relatedItemId"`
	RelatedItemType string `json:"relatedItemType"`
	ActionURL       string `json:"actionUrl"`
}

// NotificationResponse representación de salida de una notificación.
type NotificationResponse struct {
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

// NotificationListResponse listado de notificaciones con conteo de no leídas.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Total  int                    `json:"total"`
	Unread int                    `json:"unread"`
}

// ToNotificationResponse convierte la entidad a su representación de salida.
func ToNotificationResponse(n *entity.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:              n.ID,
		Title:           n.Title,
		Message:         n.Message,
		Type:            n.Type,
		Priority:        n.Priority,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt,
		RelatedItemID:   n.RelatedItemID,
		RelatedItemType: n.RelatedItemType,
		ActionURL:       n.ActionURL,
	}
}
