package blob

import (
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre el blob store.
type NotificationRepo struct {
	store *Store
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

func (r *NotificationRepo) load() ([]entity.Notification, error) {
	var notifications []entity.Notification
	if err := r.store.Load(KeyNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// List devuelve la colección completa.
func (r *NotificationRepo) List() ([]entity.Notification, error) {
	return r.load()
}

// GetByID devuelve la notificación o nil si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	notifications, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			return &notifications[i], nil
		}
	}
	return nil, nil
}

// Create agrega la notificación y reescribe la colección completa.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	notifications, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyNotifications, append(notifications, *notification))
}

// Update reemplaza por identidad. ErrNotFound si el registro ya no existe.
func (r *NotificationRepo) Update(notification *entity.Notification) error {
	notifications, err := r.load()
	if err != nil {
		return err
	}
	for i := range notifications {
		if notifications[i].ID == notification.ID {
			notifications[i] = *notification
			return r.store.Save(KeyNotifications, notifications)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por identidad. ErrNotFound si el registro ya no existe.
func (r *NotificationRepo) Delete(id string) error {
	notifications, err := r.load()
	if err != nil {
		return err
	}
	kept := notifications[:0]
	for _, n := range notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notifications) {
		return domain.ErrNotFound
	}
	return r.store.Save(KeyNotifications, kept)
}
