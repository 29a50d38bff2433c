package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/csvcodec"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

// BOMUseCase casos de uso de bills of materials. Los faltantes y costos nunca
// se persisten: se computan en cada lectura contra el inventario vigente.
type BOMUseCase struct {
	repo    repository.BOMRepository
	invRepo repository.InventoryRepository
	cache   ViewCache
}

func NewBOMUseCase(repo repository.BOMRepository, invRepo repository.InventoryRepository, cache ViewCache) *BOMUseCase {
	return &BOMUseCase{repo: repo, invRepo: invRepo, cache: cache}
}

// refreshStock actualiza AvailableStock de cada línea enlazada a inventario.
// Las líneas sin enlace conservan el snapshot guardado.
func (uc *BOMUseCase) refreshStock(bom *entity.BOM) {
	for i := range bom.Items {
		if bom.Items[i].InventoryItemID == "" {
			continue
		}
		item, err := uc.invRepo.GetByID(bom.Items[i].InventoryItemID)
		if err != nil || item == nil {
			continue
		}
		bom.Items[i].AvailableStock = item.CurrentStock
	}
}

// List devuelve todos los BOM con stock, faltantes y costos al día.
// No usa la vista cacheada: el stock disponible cambia con el inventario.
func (uc *BOMUseCase) List(ctx context.Context) (*dto.BOMListResponse, error) {
	boms, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("error al listar BOM: %w", err)
	}
	resp := &dto.BOMListResponse{Items: make([]dto.BOMResponse, 0, len(boms)), Total: len(boms)}
	for i := range boms {
		uc.refreshStock(&boms[i])
		resp.Items = append(resp.Items, *dto.ToBOMResponse(&boms[i]))
	}
	return resp, nil
}

// GetByID devuelve un BOM por su ID con valores computados al día.
func (uc *BOMUseCase) GetByID(_ context.Context, id string) (*dto.BOMResponse, error) {
	bom, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener BOM: %w", err)
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	uc.refreshStock(bom)
	return dto.ToBOMResponse(bom), nil
}

func itemsFromInput(inputs []dto.BOMItemInput) ([]entity.BOMItem, error) {
	items := make([]entity.BOMItem, 0, len(inputs))
	for _, in := range inputs {
		if in.RequiredQuantity < 0 || in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.BOMItem{
			ItemName:         in.ItemName,
			InventoryItemID:  in.InventoryItemID,
			RequiredQuantity: in.RequiredQuantity,
			UnitPrice:        in.UnitPrice,
		})
	}
	return items, nil
}

// Create da de alta un BOM.
func (uc *BOMUseCase) Create(ctx context.Context, in *dto.CreateBOMRequest, actor string) (*dto.BOMResponse, error) {
	items, err := itemsFromInput(in.Items)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	bom := &entity.BOM{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actor,
	}
	uc.refreshStock(bom)
	if err := uc.repo.Create(bom); err != nil {
		return nil, fmt.Errorf("error al crear BOM: %w", err)
	}
	uc.cache.Invalidate(ctx, colBOM)
	return dto.ToBOMResponse(bom), nil
}

// Update aplica un patch; si el payload trae líneas, reemplazan a las actuales.
func (uc *BOMUseCase) Update(ctx context.Context, id string, in *dto.UpdateBOMRequest) (*dto.BOMResponse, error) {
	bom, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener BOM: %w", err)
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		bom.Name = *in.Name
	}
	if in.Description != nil {
		bom.Description = *in.Description
	}
	if in.Items != nil {
		items, err := itemsFromInput(*in.Items)
		if err != nil {
			return nil, err
		}
		bom.Items = items
	}
	bom.UpdatedAt = time.Now()
	uc.refreshStock(bom)

	if err := uc.repo.Update(bom); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colBOM)
	return dto.ToBOMResponse(bom), nil
}

// Delete elimina un BOM; domain.ErrNotFound si no existe.
func (uc *BOMUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, colBOM)
	return nil
}

// ExportCSV serializa todos los BOM con faltantes y costos computados.
func (uc *BOMUseCase) ExportCSV(_ context.Context) (filename, content string, err error) {
	boms, err := uc.repo.List()
	if err != nil {
		return "", "", fmt.Errorf("error al listar BOM: %w", err)
	}
	for i := range boms {
		uc.refreshStock(&boms[i])
	}
	content, err = csvcodec.BOMToCSV(boms)
	if err != nil {
		return "", "", err
	}
	return exportName("bom", time.Now()), content, nil
}
