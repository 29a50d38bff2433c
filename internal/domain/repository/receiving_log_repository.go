package repository

import "github.com/tu-usuario/rocketry-hub/internal/domain/entity"

// ReceivingLogRepository puerto de persistencia para el registro de
// recepciones (solo inserción y lectura: es un log de auditoría).
type ReceivingLogRepository interface {
	List() ([]entity.ReceivingLog, error)
	Create(log *entity.ReceivingLog) error
}
