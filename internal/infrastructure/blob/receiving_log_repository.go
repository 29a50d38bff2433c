package blob

import (
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.ReceivingLogRepository = (*ReceivingLogRepo)(nil)

// ReceivingLogRepo implementación del puerto ReceivingLogRepository sobre el
// blob store (log append-only).
type ReceivingLogRepo struct {
	store *Store
}

// NewReceivingLogRepository construye el adaptador del registro de recepciones.
func NewReceivingLogRepository(store *Store) *ReceivingLogRepo {
	return &ReceivingLogRepo{store: store}
}

// List devuelve el registro completo.
func (r *ReceivingLogRepo) List() ([]entity.ReceivingLog, error) {
	var logs []entity.ReceivingLog
	if err := r.store.Load(KeyReceivingLog, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Create agrega una entrada al registro.
func (r *ReceivingLogRepo) Create(log *entity.ReceivingLog) error {
	logs, err := r.List()
	if err != nil {
		return err
	}
	return r.store.Save(KeyReceivingLog, append(logs, *log))
}
