package blob

import (
	"context"

	"github.com/tu-usuario/rocketry-hub/internal/application/receiving"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ receiving.TxRunner = (*TxRunner)(nil)

// TxRunner del modo blob: no hay transacción real entre colecciones. Las
// escrituras son secuenciales colección-completa y el último escritor gana,
// igual que el local storage del navegador al que este modo reemplaza.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner con el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos atados al store. Un error deja las colecciones ya
// escritas como quedaron (sin rollback); aceptable solo en modo usuario único.
func (r *TxRunner) Run(_ context.Context, fn func(
	pendingRepo repository.PendingRepository,
	inventoryRepo repository.InventoryRepository,
	logRepo repository.ReceivingLogRepository,
	requestRepo repository.PurchaseRequestRepository,
) error) error {
	return fn(
		NewPendingRepository(r.store),
		NewInventoryRepository(r.store),
		NewReceivingLogRepository(r.store),
		NewPurchaseRequestRepository(r.store),
	)
}
