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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, name, category, vendor, description, unit_price, current_stock, quantity, reorder_point, priority, eisenhower_quadrant, last_updated, updated_by`

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.Name, &i.Category, &i.Vendor, &i.Description, &i.UnitPrice,
		&i.CurrentStock, &i.Quantity, &i.ReorderPoint, &i.Priority,
		&i.EisenhowerQuadrant, &i.LastUpdated, &i.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List devuelve todos los ítems ordenados por nombre.
func (r *InventoryRepo) List() ([]entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	item, err := scanInventoryItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// FindByNameAndVendor busca por nombre y proveedor sin distinguir mayúsculas.
func (r *InventoryRepo) FindByNameAndVendor(name, vendor string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE lower(name) = lower($1) AND lower(vendor) = lower($2)`
	item, err := scanInventoryItem(r.q.QueryRow(context.Background(), query, name, vendor))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return item, nil
}

// Create persiste un nuevo ítem.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Vendor, item.Description, item.UnitPrice,
		item.CurrentStock, item.Quantity, item.ReorderPoint, item.Priority,
		item.EisenhowerQuadrant, item.LastUpdated, item.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// Update actualiza un ítem existente; domain.ErrNotFound si no existe.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, vendor = $4, description = $5, unit_price = $6,
		    current_stock = $7, quantity = $8, reorder_point = $9, priority = $10,
		    eisenhower_quadrant = $11, last_updated = $12, updated_by = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Vendor, item.Description, item.UnitPrice,
		item.CurrentStock, item.Quantity, item.ReorderPoint, item.Priority,
		item.EisenhowerQuadrant, item.LastUpdated, item.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem; domain.ErrNotFound si no existe.
func (r *InventoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
