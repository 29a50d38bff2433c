package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, title, message, type, priority, read, created_at, related_item_id, related_item_type, action_url`

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(
		&n.ID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.Read, &n.CreatedAt,
		&n.RelatedItemID, &n.RelatedItemType, &n.ActionURL,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// List devuelve todas las notificaciones, las más recientes primero.
func (r *NotificationRepo) List() ([]entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

// GetByID obtiene una notificación por ID; nil si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// Create persiste una nueva notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.Title, notification.Message, notification.Type,
		notification.Priority, notification.Read, notification.CreatedAt,
		notification.RelatedItemID, notification.RelatedItemType, notification.ActionURL,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Update actualiza una notificación; domain.ErrNotFound si no existe.
func (r *NotificationRepo) Update(notification *entity.Notification) error {
	query := `
		UPDATE notifications
		SET title = $2, message = $3, type = $4, priority = $5, read = $6,
		    related_item_id = $7, related_item_type = $8, action_url = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.Title, notification.Message, notification.Type,
		notification.Priority, notification.Read, notification.RelatedItemID,
		notification.RelatedItemType, notification.ActionURL,
	)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una notificación; domain.ErrNotFound si no existe.
func (r *NotificationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
