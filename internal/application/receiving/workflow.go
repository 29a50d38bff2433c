// Package receiving implementa la máquina de estados de inventario pendiente:
// Requested → Pending Receipt → Reconciled (con self-loop de edición mientras
// está pendiente). La conciliación confirma la cantidad *real* recibida, que
// puede divergir de la esperada, y la convierte en stock.
package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// WorkflowUseCase orquesta las transiciones solicitud → pendiente → inventario.
type WorkflowUseCase struct {
	tx          TxRunner
	pendingRepo repository.PendingRepository
	requestRepo repository.PurchaseRequestRepository
	logRepo     repository.ReceivingLogRepository
	cache       ViewInvalidator
	notifier    Notifier
}

// NewWorkflowUseCase construye el caso de uso. cache y notifier pueden ser nil.
func NewWorkflowUseCase(
	tx TxRunner,
	pendingRepo repository.PendingRepository,
	requestRepo repository.PurchaseRequestRepository,
	logRepo repository.ReceivingLogRepository,
	cache ViewInvalidator,
	notifier Notifier,
) *WorkflowUseCase {
	return &WorkflowUseCase{tx: tx, pendingRepo: pendingRepo, requestRepo: requestRepo, logRepo: logRepo, cache: cache, notifier: notifier}
}

func (uc *WorkflowUseCase) invalidate(ctx context.Context, collections ...string) {
	if uc.cache == nil {
		return
	}
	for _, collection := range collections {
		uc.cache.Invalidate(ctx, collection)
	}
}

// ListPending devuelve los ítems pendientes de recepción.
func (uc *WorkflowUseCase) ListPending(_ context.Context) ([]entity.PendingItem, error) {
	return uc.pendingRepo.List()
}

// ListLog devuelve el registro de recepciones conciliadas.
func (uc *WorkflowUseCase) ListLog(_ context.Context) ([]entity.ReceivingLog, error) {
	return uc.logRepo.List()
}

// priorityFromUrgency traduce la urgencia de la solicitud a la prioridad del ítem.
func priorityFromUrgency(urgency string) string {
	switch urgency {
	case entity.UrgencyCritical:
		return entity.PriorityUrgent
	case entity.UrgencyHigh:
		return entity.PriorityImportant
	case entity.UrgencyLow:
		return entity.PriorityLow
	default:
		return entity.PriorityNormal
	}
}

// MoveToPending crea el registro pendiente a partir de una solicitud de compra
// y marca la solicitud como "ordered". Cantidad esperada = cantidad solicitada.
// ErrConflict si la solicitud ya fue movida.
func (uc *WorkflowUseCase) MoveToPending(ctx context.Context, requestID, actor string) (*entity.PendingItem, error) {
	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if request.Status == entity.RequestStatusOrdered {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	pending := &entity.PendingItem{
		ID:                 uuid.New().String(),
		RequestID:          request.ID,
		Name:               request.ItemName,
		Category:           request.Type,
		Vendor:             request.Vendor,
		Description:        request.Description,
		UnitPrice:          request.UnitPrice,
		ExpectedQuantity:   request.Quantity,
		Priority:           priorityFromUrgency(request.Urgency),
		EisenhowerQuadrant: request.EisenhowerQuadrant,
		CreatedAt:          now,
		UpdatedAt:          now,
		UpdatedBy:          actor,
	}

	err = uc.tx.Run(ctx, func(
		pendingRepo repository.PendingRepository,
		_ repository.InventoryRepository,
		_ repository.ReceivingLogRepository,
		requestRepo repository.PurchaseRequestRepository,
	) error {
		if err := pendingRepo.Create(pending); err != nil {
			return err
		}
		request.Status = entity.RequestStatusOrdered
		return requestRepo.Update(request)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, "purchase-requests", "pending-inventory")
	return pending, nil
}

// EditPendingInput campos mutables de un pendiente (patch parcial).
type EditPendingInput struct {
	Name             *string
	Description      *string
	UnitPrice        *decimal.Decimal
	ExpectedQuantity *int
}

// EditPending reemplaza campos mutables del pendiente sin cambiar identidad ni
// estado (self-loop de Pending Receipt).
func (uc *WorkflowUseCase) EditPending(ctx context.Context, id string, in EditPendingInput, actor string) (*entity.PendingItem, error) {
	pending, err := uc.pendingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		pending.Name = *in.Name
	}
	if in.Description != nil {
		pending.Description = *in.Description
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pending.UnitPrice = *in.UnitPrice
	}
	if in.ExpectedQuantity != nil {
		if *in.ExpectedQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		pending.ExpectedQuantity = *in.ExpectedQuantity
	}
	pending.UpdatedAt = time.Now()
	pending.UpdatedBy = actor
	if err := uc.pendingRepo.Update(pending); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, "pending-inventory")
	return pending, nil
}

// ConfirmReceiptInput entrada de la conciliación. ActualQuantity nil usa la
// cantidad esperada del pendiente.
type ConfirmReceiptInput struct {
	PendingID      string
	ActualQuantity *int
	Condition      string
	QualityNotes   string
	Actor          string
}

// ConfirmReceipt concilia un pendiente: lo elimina, crea o incrementa el
// InventoryItem correspondiente con la cantidad *real* (sin recorte a la
// esperada: sobre y sub entregas se registran tal cual) y deja constancia en
// el registro de recepciones con condición y notas de calidad.
func (uc *WorkflowUseCase) ConfirmReceipt(ctx context.Context, in ConfirmReceiptInput) (*entity.InventoryItem, error) {
	pending, err := uc.pendingRepo.GetByID(in.PendingID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, domain.ErrNotFound
	}

	actual := pending.ExpectedQuantity
	if in.ActualQuantity != nil {
		if *in.ActualQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		actual = *in.ActualQuantity
	}
	condition := validate.Enum(in.Condition, entity.Conditions, entity.ConditionGood)

	now := time.Now()
	var result *entity.InventoryItem

	err = uc.tx.Run(ctx, func(
		pendingRepo repository.PendingRepository,
		inventoryRepo repository.InventoryRepository,
		logRepo repository.ReceivingLogRepository,
		_ repository.PurchaseRequestRepository,
	) error {
		if err := pendingRepo.Delete(pending.ID); err != nil {
			return err
		}

		// Ítem lógico existente: primero por id de inventario arrastrado,
		// si no por nombre+proveedor.
		var item *entity.InventoryItem
		if pending.InventoryID != "" {
			item, err = inventoryRepo.GetByID(pending.InventoryID)
			if err != nil {
				return err
			}
		}
		if item == nil {
			item, err = inventoryRepo.FindByNameAndVendor(pending.Name, pending.Vendor)
			if err != nil {
				return err
			}
		}

		if item != nil {
			item.CurrentStock += actual
			item.Quantity += actual
			item.UnitPrice = pending.UnitPrice
			item.LastUpdated = now
			item.UpdatedBy = in.Actor
			if err := inventoryRepo.Update(item); err != nil {
				return err
			}
		} else {
			item = &entity.InventoryItem{
				ID:                 uuid.New().String(),
				Name:               pending.Name,
				Category:           pending.Category,
				Vendor:             pending.Vendor,
				Description:        pending.Description,
				UnitPrice:          pending.UnitPrice,
				CurrentStock:       actual,
				Quantity:           actual,
				Priority:           pending.Priority,
				EisenhowerQuadrant: pending.EisenhowerQuadrant,
				LastUpdated:        now,
				UpdatedBy:          in.Actor,
			}
			if err := inventoryRepo.Create(item); err != nil {
				return err
			}
		}
		result = item

		return logRepo.Create(&entity.ReceivingLog{
			ID:               uuid.New().String(),
			PendingItemID:    pending.ID,
			InventoryItemID:  item.ID,
			ItemName:         pending.Name,
			Vendor:           pending.Vendor,
			ExpectedQuantity: pending.ExpectedQuantity,
			ActualQuantity:   actual,
			Condition:        condition,
			QualityNotes:     in.QualityNotes,
			ReceivedBy:       in.Actor,
			ReceivedAt:       now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, "pending-inventory", "inventory")

	// Aviso fuera de la transacción: el stock recibido puede seguir al nivel
	// de reorden o por debajo (entrega parcial).
	if uc.notifier != nil && result.BelowReorderPoint() {
		uc.notifier.LowStock(*result)
	}
	return result, nil
}
