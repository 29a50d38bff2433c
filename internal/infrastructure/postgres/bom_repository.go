package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación del puerto BOMRepository sobre PostgreSQL. Las líneas
// se guardan como JSONB: siempre se leen y escriben como documento completo.
// Faltantes y costos nunca se persisten.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

const bomColumns = `id, name, description, items, created_at, updated_at, created_by`

func scanBOM(row pgx.Row) (*entity.BOM, error) {
	var b entity.BOM
	var items []byte
	err := row.Scan(&b.ID, &b.Name, &b.Description, &items, &b.CreatedAt, &b.UpdatedAt, &b.CreatedBy)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &b.Items); err != nil {
			return nil, fmt.Errorf("unmarshal bom items: %w", err)
		}
	}
	return &b, nil
}

// List devuelve todos los BOM ordenados por nombre.
func (r *BOMRepo) List() ([]entity.BOM, error) {
	query := `SELECT ` + bomColumns + ` FROM boms ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()

	var boms []entity.BOM
	for rows.Next() {
		bom, err := scanBOM(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		boms = append(boms, *bom)
	}
	return boms, rows.Err()
}

// GetByID obtiene un BOM por ID; nil si no existe.
func (r *BOMRepo) GetByID(id string) (*entity.BOM, error) {
	query := `SELECT ` + bomColumns + ` FROM boms WHERE id = $1`
	bom, err := scanBOM(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	return bom, nil
}

// Create persiste un nuevo BOM.
func (r *BOMRepo) Create(bom *entity.BOM) error {
	items, err := json.Marshal(bom.Items)
	if err != nil {
		return fmt.Errorf("marshal bom items: %w", err)
	}
	query := `
		INSERT INTO boms (` + bomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		bom.ID, bom.Name, bom.Description, items, bom.CreatedAt, bom.UpdatedAt, bom.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom: %w", err)
	}
	return nil
}

// Update actualiza un BOM existente; domain.ErrNotFound si no existe.
func (r *BOMRepo) Update(bom *entity.BOM) error {
	items, err := json.Marshal(bom.Items)
	if err != nil {
		return fmt.Errorf("marshal bom items: %w", err)
	}
	query := `
		UPDATE boms
		SET name = $2, description = $3, items = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		bom.ID, bom.Name, bom.Description, items, bom.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bom: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un BOM; domain.ErrNotFound si no existe.
func (r *BOMRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM boms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bom: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
