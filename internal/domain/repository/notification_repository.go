package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// NotificationRepository puerto de persistencia para notificaciones.
type NotificationRepository interface {
	List() ([]entity.Notification, error)
	GetByID(id string) (*entity.Notification, error)
	Create(notification *entity.Notification) error
	Update(notification *entity.Notification) error
	Delete(id string) error
}
