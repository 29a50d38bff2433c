package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/receiving"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// NotificationUseCase casos de uso de notificaciones del tablero. Además de
// persistir, empuja cada alta por websocket a los clientes conectados.
type NotificationUseCase struct {
	repo        repository.NotificationRepository
	cache       ViewCache
	broadcaster Broadcaster
}

// NewNotificationUseCase crea el caso de uso. broadcaster puede ser nil.
func NewNotificationUseCase(repo repository.NotificationRepository, cache ViewCache, broadcaster Broadcaster) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, cache: cache, broadcaster: broadcaster}
}

var _ receiving.Notifier = (*NotificationUseCase)(nil)

// wsEvent sobre que viaja por el websocket.
type wsEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func (uc *NotificationUseCase) push(event string, data any) {
	if uc.broadcaster == nil {
		return
	}
	payload, err := json.Marshal(wsEvent{Event: event, Data: data})
	if err != nil {
		return
	}
	uc.broadcaster.Broadcast(payload)
}

// List devuelve las notificaciones con el conteo de no leídas.
func (uc *NotificationUseCase) List(ctx context.Context) (*dto.NotificationListResponse, error) {
	if payload, ok := uc.cache.Get(ctx, colNotifications); ok {
		var cached dto.NotificationListResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	notifications, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("error al listar notificaciones: %w", err)
	}
	resp := &dto.NotificationListResponse{Items: make([]dto.NotificationResponse, 0, len(notifications)), Total: len(notifications)}
	for i := range notifications {
		if !notifications[i].Read {
			resp.Unread++
		}
		resp.Items = append(resp.Items, *dto.ToNotificationResponse(&notifications[i]))
	}
	if payload, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, colNotifications, payload)
	}
	return resp, nil
}

// Create da de alta una notificación y la difunde por websocket.
func (uc *NotificationUseCase) Create(ctx context.Context, in *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	notification := &entity.Notification{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Message:         in.Message,
		Type:            validate.Enum(in.Type, entity.NotificationTypes, entity.NotificationInfo),
		Priority:        validate.Enum(in.Priority, entity.NotificationPriorities, entity.UrgencyMedium),
		Read:            false,
		CreatedAt:       time.Now(),
		RelatedItemID:   in.RelatedItemID,
		RelatedItemType: in.RelatedItemType,
		ActionURL:       in.ActionURL,
	}
	if err := uc.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("error al crear notificación: %w", err)
	}
	uc.cache.Invalidate(ctx, colNotifications)

	resp := dto.ToNotificationResponse(notification)
	uc.push("notification", resp)
	return resp, nil
}

// MarkRead marca una notificación como leída.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	notification, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener notificación: %w", err)
	}
	if notification == nil {
		return nil, domain.ErrNotFound
	}
	notification.Read = true
	if err := uc.repo.Update(notification); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colNotifications)
	return dto.ToNotificationResponse(notification), nil
}

// MarkAllRead marca todas las notificaciones como leídas.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context) error {
	notifications, err := uc.repo.List()
	if err != nil {
		return fmt.Errorf("error al listar notificaciones: %w", err)
	}
	for i := range notifications {
		if notifications[i].Read {
			continue
		}
		notifications[i].Read = true
		if err := uc.repo.Update(&notifications[i]); err != nil {
			return err
		}
	}
	uc.cache.Invalidate(ctx, colNotifications)
	return nil
}

// Delete elimina una notificación; domain.ErrNotFound si no existe.
func (uc *NotificationUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, colNotifications)
	return nil
}

// LowStock genera la alerta de stock bajo disparada por el workflow de
// recepción o por una edición de inventario.
func (uc *NotificationUseCase) LowStock(item entity.InventoryItem) {
	_, _ = uc.Create(context.Background(), &dto.CreateNotificationRequest{
		Title:           "Stock bajo",
		Message:         fmt.Sprintf("%s quedó en %d unidades (punto de reorden: %d)", item.Name, item.CurrentStock, item.ReorderPoint),
		Type:            entity.NotificationWarning,
		Priority:        entity.UrgencyHigh,
		RelatedItemID:   item.ID,
		RelatedItemType: "inventory",
		ActionURL:       "/inventory",
	})
}
