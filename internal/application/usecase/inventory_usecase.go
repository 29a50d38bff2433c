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
	"github.com/tu-usuario/rocketry-hub/internal/domain/csvcodec"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// InventoryUseCase casos de uso de inventario confirmado.
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	cache    ViewCache
	notifier receiving.Notifier
}

// NewInventoryUseCase crea el caso de uso. notifier puede ser nil.
func NewInventoryUseCase(repo repository.InventoryRepository, cache ViewCache, notifier receiving.Notifier) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, cache: cache, notifier: notifier}
}

// List devuelve el listado completo, sirviendo la vista cacheada si existe.
func (uc *InventoryUseCase) List(ctx context.Context) (*dto.InventoryListResponse, error) {
	if payload, ok := uc.cache.Get(ctx, colInventory); ok {
		var cached dto.InventoryListResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("error al listar inventario: %w", err)
	}

	resp := &dto.InventoryListResponse{Items: make([]dto.InventoryItemResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		resp.Items = append(resp.Items, *dto.ToInventoryItemResponse(&items[i]))
	}
	if payload, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, colInventory, payload)
	}
	return resp, nil
}

// GetByID devuelve un ítem por su ID.
func (uc *InventoryUseCase) GetByID(_ context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener ítem: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToInventoryItemResponse(item), nil
}

// Create da de alta un ítem. Prioridad y cuadrante inválidos se normalizan;
// cantidades o precio negativos se rechazan.
func (uc *InventoryUseCase) Create(ctx context.Context, in *dto.CreateInventoryItemRequest, actor string) (*dto.InventoryItemResponse, error) {
	if in.CurrentStock < 0 || in.Quantity < 0 || in.ReorderPoint < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.InventoryItem{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		Category:           in.Category,
		Vendor:             in.Vendor,
		Description:        in.Description,
		UnitPrice:          in.UnitPrice,
		CurrentStock:       in.CurrentStock,
		Quantity:           in.Quantity,
		ReorderPoint:       in.ReorderPoint,
		Priority:           validate.Enum(in.Priority, entity.Priorities, entity.PriorityNormal),
		EisenhowerQuadrant: validate.Enum(in.EisenhowerQuadrant, entity.Quadrants, ""),
		LastUpdated:        time.Now(),
		UpdatedBy:          actor,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, fmt.Errorf("error al crear ítem: %w", err)
	}
	uc.cache.Invalidate(ctx, colInventory)
	return dto.ToInventoryItemResponse(item), nil
}

// Update aplica un patch parcial y re-estampa LastUpdated/UpdatedBy aunque el
// payload no cambie ningún campo de negocio.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in *dto.UpdateInventoryItemRequest, actor string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener ítem: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Vendor != nil {
		item.Vendor = *in.Vendor
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.CurrentStock != nil {
		if *in.CurrentStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.CurrentStock = *in.CurrentStock
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderPoint = *in.ReorderPoint
	}
	if in.Priority != nil {
		item.Priority = validate.Enum(*in.Priority, entity.Priorities, entity.PriorityNormal)
	}
	if in.EisenhowerQuadrant != nil {
		item.EisenhowerQuadrant = validate.Enum(*in.EisenhowerQuadrant, entity.Quadrants, "")
	}
	item.LastUpdated = time.Now()
	item.UpdatedBy = actor

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colInventory)

	if uc.notifier != nil && item.BelowReorderPoint() {
		uc.notifier.LowStock(*item)
	}
	return dto.ToInventoryItemResponse(item), nil
}

// Delete elimina un ítem; domain.ErrNotFound si no existe.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, colInventory)
	return nil
}

// ImportCSV parsea y valida el archivo completo antes de persistir: un lote
// inválido no deja efectos parciales.
func (uc *InventoryUseCase) ImportCSV(ctx context.Context, data []byte) (int, error) {
	items, err := csvcodec.InventoryFromCSV(data)
	if err != nil {
		return 0, err
	}
	for i := range items {
		if err := uc.repo.Create(&items[i]); err != nil {
			return i, fmt.Errorf("error al importar fila %d: %w", i+1, err)
		}
	}
	uc.cache.Invalidate(ctx, colInventory)
	return len(items), nil
}

// ExportCSV serializa todo el inventario y devuelve el nombre de descarga.
func (uc *InventoryUseCase) ExportCSV(_ context.Context) (filename, content string, err error) {
	items, err := uc.repo.List()
	if err != nil {
		return "", "", fmt.Errorf("error al listar inventario: %w", err)
	}
	content, err = csvcodec.InventoryToCSV(items)
	if err != nil {
		return "", "", err
	}
	return exportName("inventory", time.Now()), content, nil
}
