package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.ReceivingLogRepository = (*ReceivingLogRepo)(nil)

// ReceivingLogRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
// Solo inserción y lectura: es un log de auditoría.
type ReceivingLogRepo struct {
	q Querier
}

// NewReceivingLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceivingLogRepository(q Querier) *ReceivingLogRepo {
	return &ReceivingLogRepo{q: q}
}

const receivingLogColumns = `id, pending_item_id, inventory_item_id, item_name, vendor, expected_quantity, actual_quantity, condition, quality_notes, received_by, received_at`

// List devuelve el registro completo, las recepciones más recientes primero.
func (r *ReceivingLogRepo) List() ([]entity.ReceivingLog, error) {
	query := `SELECT ` + receivingLogColumns + ` FROM receiving_logs ORDER BY received_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list receiving logs: %w", err)
	}
	defer rows.Close()

	var logs []entity.ReceivingLog
	for rows.Next() {
		var l entity.ReceivingLog
		err := rows.Scan(
			&l.ID, &l.PendingItemID, &l.InventoryItemID, &l.ItemName, &l.Vendor,
			&l.ExpectedQuantity, &l.ActualQuantity, &l.Condition, &l.QualityNotes,
			&l.ReceivedBy, &l.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan receiving log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Create persiste una entrada del registro.
func (r *ReceivingLogRepo) Create(log *entity.ReceivingLog) error {
	query := `
		INSERT INTO receiving_logs (` + receivingLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.PendingItemID, log.InventoryItemID, log.ItemName, log.Vendor,
		log.ExpectedQuantity, log.ActualQuantity, log.Condition, log.QualityNotes,
		log.ReceivedBy, log.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receiving log: %w", err)
	}
	return nil
}
