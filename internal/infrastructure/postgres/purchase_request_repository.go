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

var _ repository.PurchaseRequestRepository = (*PurchaseRequestRepo)(nil)

// PurchaseRequestRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
type PurchaseRequestRepo struct {
	q Querier
}

// NewPurchaseRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRequestRepository(q Querier) *PurchaseRequestRepo {
	return &PurchaseRequestRepo{q: q}
}

const requestColumns = `id, item_name, title, description, type, unit_price, quantity, urgency, vendor, requested_by, requested_date, status, approved_by, approved_date, notes, team, eisenhower_quadrant`

func scanRequest(row pgx.Row) (*entity.PurchaseRequest, error) {
	var req entity.PurchaseRequest
	err := row.Scan(
		&req.ID, &req.ItemName, &req.Title, &req.Description, &req.Type, &req.UnitPrice,
		&req.Quantity, &req.Urgency, &req.Vendor, &req.RequestedBy, &req.RequestedDate,
		&req.Status, &req.ApprovedBy, &req.ApprovedDate, &req.Notes, &req.Team,
		&req.EisenhowerQuadrant,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List devuelve todas las solicitudes, las más recientes primero.
func (r *PurchaseRequestRepo) List() ([]entity.PurchaseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM purchase_requests ORDER BY requested_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	defer rows.Close()

	var requests []entity.PurchaseRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase request: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

// GetByID obtiene una solicitud por ID; nil si no existe.
func (r *PurchaseRequestRepo) GetByID(id string) (*entity.PurchaseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM purchase_requests WHERE id = $1`
	req, err := scanRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase request: %w", err)
	}
	return req, nil
}

// Create persiste una nueva solicitud.
func (r *PurchaseRequestRepo) Create(request *entity.PurchaseRequest) error {
	query := `
		INSERT INTO purchase_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.ItemName, request.Title, request.Description, request.Type,
		request.UnitPrice, request.Quantity, request.Urgency, request.Vendor,
		request.RequestedBy, request.RequestedDate, request.Status, request.ApprovedBy,
		request.ApprovedDate, request.Notes, request.Team, request.EisenhowerQuadrant,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

// Update actualiza una solicitud existente; domain.ErrNotFound si no existe.
func (r *PurchaseRequestRepo) Update(request *entity.PurchaseRequest) error {
	query := `
		UPDATE purchase_requests
		SET item_name = $2, title = $3, description = $4, type = $5, unit_price = $6,
		    quantity = $7, urgency = $8, vendor = $9, requested_by = $10,
		    requested_date = $11, status = $12, approved_by = $13, approved_date = $14,
		    notes = $15, team = $16, eisenhower_quadrant = $17
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		request.ID, request.ItemName, request.Title, request.Description, request.Type,
		request.UnitPrice, request.Quantity, request.Urgency, request.Vendor,
		request.RequestedBy, request.RequestedDate, request.Status, request.ApprovedBy,
		request.ApprovedDate, request.Notes, request.Team, request.EisenhowerQuadrant,
	)
	if err != nil {
		return fmt.Errorf("update purchase request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una solicitud; domain.ErrNotFound si no existe.
func (r *PurchaseRequestRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM purchase_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
