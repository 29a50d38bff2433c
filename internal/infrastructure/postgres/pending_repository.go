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

var _ repository.PendingRepository = (*PendingRepo)(nil)

// PendingRepo implementación del puerto PendingRepository sobre PostgreSQL (usable con pool o tx).
type PendingRepo struct {
	q Querier
}

// NewPendingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPendingRepository(q Querier) *PendingRepo {
	return &PendingRepo{q: q}
}

const pendingColumns = `id, request_id, inventory_id, name, category, vendor, description, unit_price, expected_quantity, priority, eisenhower_quadrant, created_at, updated_at, updated_by`

func scanPendingItem(row pgx.Row) (*entity.PendingItem, error) {
	var p entity.PendingItem
	err := row.Scan(
		&p.ID, &p.RequestID, &p.InventoryID, &p.Name, &p.Category, &p.Vendor,
		&p.Description, &p.UnitPrice, &p.ExpectedQuantity, &p.Priority,
		&p.EisenhowerQuadrant, &p.CreatedAt, &p.UpdatedAt, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todos los pendientes, los más antiguos primero.
func (r *PendingRepo) List() ([]entity.PendingItem, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_items ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pending items: %w", err)
	}
	defer rows.Close()

	var items []entity.PendingItem
	for rows.Next() {
		item, err := scanPendingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetByID obtiene un pendiente por ID; nil si no existe.
func (r *PendingRepo) GetByID(id string) (*entity.PendingItem, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_items WHERE id = $1`
	item, err := scanPendingItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending item: %w", err)
	}
	return item, nil
}

// Create persiste un nuevo pendiente.
func (r *PendingRepo) Create(item *entity.PendingItem) error {
	query := `
		INSERT INTO pending_items (` + pendingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RequestID, item.InventoryID, item.Name, item.Category, item.Vendor,
		item.Description, item.UnitPrice, item.ExpectedQuantity, item.Priority,
		item.EisenhowerQuadrant, item.CreatedAt, item.UpdatedAt, item.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pending item: %w", err)
	}
	return nil
}

// Update actualiza un pendiente existente; domain.ErrNotFound si no existe.
func (r *PendingRepo) Update(item *entity.PendingItem) error {
	query := `
		UPDATE pending_items
		SET request_id = $2, inventory_id = $3, name = $4, category = $5, vendor = $6,
		    description = $7, unit_price = $8, expected_quantity = $9, priority = $10,
		    eisenhower_quadrant = $11, updated_at = $12, updated_by = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.RequestID, item.InventoryID, item.Name, item.Category, item.Vendor,
		item.Description, item.UnitPrice, item.ExpectedQuantity, item.Priority,
		item.EisenhowerQuadrant, item.UpdatedAt, item.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update pending item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pendiente; domain.ErrNotFound si no existe.
func (r *PendingRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pending_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pending item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
