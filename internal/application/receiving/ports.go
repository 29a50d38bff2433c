package receiving

import (
	"context"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

// TxRunner ejecuta fn con los repos del workflow dentro de una transacción.
// En postgres es una transacción real con Commit/Rollback; en modo blob son
// escrituras secuenciales sin atomicidad entre colecciones.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pendingRepo repository.PendingRepository,
		inventoryRepo repository.InventoryRepository,
		logRepo repository.ReceivingLogRepository,
		requestRepo repository.PurchaseRequestRepository,
	) error) error
}

// Notifier publica avisos derivados del workflow (fuera de la transacción).
type Notifier interface {
	LowStock(item entity.InventoryItem)
}

// ViewInvalidator descarta vistas cacheadas de las colecciones que el
// workflow muta fuera de sus propios listados.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, collection string)
}
