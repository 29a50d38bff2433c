package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/csvcodec"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// PurchaseRequestUseCase casos de uso de solicitudes de compra.
type PurchaseRequestUseCase struct {
	repo  repository.PurchaseRequestRepository
	cache ViewCache
	teams []string
}

// NewPurchaseRequestUseCase crea el caso de uso. teams son los equipos
// configurados; un equipo desconocido cae al primero de la lista.
func NewPurchaseRequestUseCase(repo repository.PurchaseRequestRepository, cache ViewCache, teams []string) *PurchaseRequestUseCase {
	return &PurchaseRequestUseCase{repo: repo, cache: cache, teams: teams}
}

func (uc *PurchaseRequestUseCase) defaultTeam() string {
	if len(uc.teams) == 0 {
		return ""
	}
	return uc.teams[0]
}

// List devuelve el listado completo, sirviendo la vista cacheada si existe.
func (uc *PurchaseRequestUseCase) List(ctx context.Context) (*dto.PurchaseRequestListResponse, error) {
	if payload, ok := uc.cache.Get(ctx, colRequests); ok {
		var cached dto.PurchaseRequestListResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	requests, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("error al listar solicitudes: %w", err)
	}
	resp := &dto.PurchaseRequestListResponse{Items: make([]dto.PurchaseRequestResponse, 0, len(requests)), Total: len(requests)}
	for i := range requests {
		resp.Items = append(resp.Items, *dto.ToPurchaseRequestResponse(&requests[i]))
	}
	if payload, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, colRequests, payload)
	}
	return resp, nil
}

// GetByID devuelve una solicitud por su ID.
func (uc *PurchaseRequestUseCase) GetByID(_ context.Context, id string) (*dto.PurchaseRequestResponse, error) {
	request, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener solicitud: %w", err)
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToPurchaseRequestResponse(request), nil
}

// Create da de alta una solicitud en estado pending.
func (uc *PurchaseRequestUseCase) Create(ctx context.Context, in *dto.CreatePurchaseRequestRequest) (*dto.PurchaseRequestResponse, error) {
	if in.Quantity < 1 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	request := &entity.PurchaseRequest{
		ID:                 uuid.NewString(),
		ItemName:           in.ItemName,
		Title:              in.Title,
		Description:        in.Description,
		Type:               in.Type,
		UnitPrice:          in.UnitPrice,
		Quantity:           in.Quantity,
		Urgency:            validate.Enum(in.Urgency, entity.Urgencies, entity.UrgencyMedium),
		Vendor:             in.Vendor,
		RequestedBy:        in.RequestedBy,
		RequestedDate:      time.Now(),
		Status:             entity.RequestStatusPending,
		Notes:              in.Notes,
		Team:               validate.EnumFold(in.Team, uc.teams, uc.defaultTeam()),
		EisenhowerQuadrant: validate.Enum(in.EisenhowerQuadrant, entity.Quadrants, ""),
	}
	if err := uc.repo.Create(request); err != nil {
		return nil, fmt.Errorf("error al crear solicitud: %w", err)
	}
	uc.cache.Invalidate(ctx, colRequests)
	return dto.ToPurchaseRequestResponse(request), nil
}

// Update aplica un patch parcial. El estado no se toca por esta vía: las
// transiciones pasan por Approve, Reject o el workflow de recepción.
func (uc *PurchaseRequestUseCase) Update(ctx context.Context, id string, in *dto.UpdatePurchaseRequestRequest) (*dto.PurchaseRequestResponse, error) {
	request, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener solicitud: %w", err)
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}

	if in.ItemName != nil {
		request.ItemName = *in.ItemName
	}
	if in.Title != nil {
		request.Title = *in.Title
	}
	if in.Description != nil {
		request.Description = *in.Description
	}
	if in.Type != nil {
		request.Type = *in.Type
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		request.UnitPrice = *in.UnitPrice
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		request.Quantity = *in.Quantity
	}
	if in.Urgency != nil {
		request.Urgency = validate.Enum(*in.Urgency, entity.Urgencies, entity.UrgencyMedium)
	}
	if in.Vendor != nil {
		request.Vendor = *in.Vendor
	}
	if in.Team != nil {
		request.Team = validate.EnumFold(*in.Team, uc.teams, uc.defaultTeam())
	}
	if in.Notes != nil {
		request.Notes = *in.Notes
	}
	if in.EisenhowerQuadrant != nil {
		request.EisenhowerQuadrant = validate.Enum(*in.EisenhowerQuadrant, entity.Quadrants, "")
	}

	if err := uc.repo.Update(request); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colRequests)
	return dto.ToPurchaseRequestResponse(request), nil
}

// Approve aprueba una solicitud pendiente estampando quién y cuándo.
// Solo pending puede aprobarse; otro estado es domain.ErrConflict.
func (uc *PurchaseRequestUseCase) Approve(ctx context.Context, id, approver string) (*dto.PurchaseRequestResponse, error) {
	return uc.resolve(ctx, id, approver, entity.RequestStatusApproved, "")
}

// Reject rechaza una solicitud pendiente con una nota opcional.
func (uc *PurchaseRequestUseCase) Reject(ctx context.Context, id, approver, notes string) (*dto.PurchaseRequestResponse, error) {
	return uc.resolve(ctx, id, approver, entity.RequestStatusRejected, notes)
}

func (uc *PurchaseRequestUseCase) resolve(ctx context.Context, id, approver, status, notes string) (*dto.PurchaseRequestResponse, error) {
	request, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener solicitud: %w", err)
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if request.Status != entity.RequestStatusPending {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	request.Status = status
	request.ApprovedBy = approver
	request.ApprovedDate = &now
	if notes != "" {
		request.Notes = notes
	}
	if err := uc.repo.Update(request); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, colRequests)
	return dto.ToPurchaseRequestResponse(request), nil
}

// Delete elimina una solicitud; domain.ErrNotFound si no existe.
func (uc *PurchaseRequestUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, colRequests)
	return nil
}

// ImportCSV parsea y valida el archivo completo antes de persistir.
func (uc *PurchaseRequestUseCase) ImportCSV(ctx context.Context, data []byte) (int, error) {
	requests, err := csvcodec.RequestsFromCSV(data, uc.teams)
	if err != nil {
		return 0, err
	}
	for i := range requests {
		if err := uc.repo.Create(&requests[i]); err != nil {
			return i, fmt.Errorf("error al importar fila %d: %w", i+1, err)
		}
	}
	uc.cache.Invalidate(ctx, colRequests)
	return len(requests), nil
}

// ExportCSV serializa todas las solicitudes y devuelve el nombre de descarga.
func (uc *PurchaseRequestUseCase) ExportCSV(_ context.Context) (filename, content string, err error) {
	requests, err := uc.repo.List()
	if err != nil {
		return "", "", fmt.Errorf("error al listar solicitudes: %w", err)
	}
	content, err = csvcodec.RequestsToCSV(requests)
	if err != nil {
		return "", "", err
	}
	return exportName("purchase-requests", time.Now()), content, nil
}
