package receiving_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rocketry-hub/internal/application/receiving"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
)

// recordedNotifier captura los avisos de stock bajo emitidos por el workflow.
type recordedNotifier struct {
	lowStock []entity.InventoryItem
}

func (n *recordedNotifier) LowStock(item entity.InventoryItem) {
	n.lowStock = append(n.lowStock, item)
}

// fixture arma el workflow completo sobre un blob store en memoria.
type fixture struct {
	store    *blob.Store
	uc       *receiving.WorkflowUseCase
	notifier *recordedNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := blob.NewMemStore()
	notifier := &recordedNotifier{}
	uc := receiving.NewWorkflowUseCase(
		blob.NewTxRunner(store),
		blob.NewPendingRepository(store),
		blob.NewPurchaseRequestRepository(store),
		blob.NewReceivingLogRepository(store),
		nil,
		notifier,
	)
	return &fixture{store: store, uc: uc, notifier: notifier}
}

func (f *fixture) seedRequest(t *testing.T, req entity.PurchaseRequest) {
	t.Helper()
	require.NoError(t, blob.NewPurchaseRequestRepository(f.store).Create(&req))
}

func (f *fixture) seedPending(t *testing.T, p entity.PendingItem) {
	t.Helper()
	require.NoError(t, blob.NewPendingRepository(f.store).Create(&p))
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// MoveToPending: Requested → Pending Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestMoveToPending_CreaPendienteYMarcaOrdered(t *testing.T) {
	f := newFixture(t)
	f.seedRequest(t, entity.PurchaseRequest{
		ID:       "pr-1",
		ItemName: "Flight computer v3",
		Vendor:   "Mouser",
		Quantity: 10,
		Urgency:  entity.UrgencyCritical,
		Status:   entity.RequestStatusApproved,
		UnitPrice: decimal.RequireFromString("54.90"),
	})

	pending, err := f.uc.MoveToPending(context.Background(), "pr-1", "dana")
	require.NoError(t, err)

	assert.Equal(t, 10, pending.ExpectedQuantity, "la cantidad esperada es la solicitada")
	assert.Equal(t, "pr-1", pending.RequestID)
	assert.Equal(t, entity.PriorityUrgent, pending.Priority, "urgencia critical mapea a prioridad urgent")
	assert.True(t, pending.UnitPrice.Equal(decimal.RequireFromString("54.90")))

	request, err := blob.NewPurchaseRequestRepository(f.store).GetByID("pr-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusOrdered, request.Status, "la solicitud queda ordered")
}

func TestMoveToPending_SolicitudInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.MoveToPending(context.Background(), "no-existe", "dana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMoveToPending_DobleMovimientoConflicto(t *testing.T) {
	f := newFixture(t)
	f.seedRequest(t, entity.PurchaseRequest{ID: "pr-1", ItemName: "Igniter", Vendor: "Cesaroni", Quantity: 5})

	_, err := f.uc.MoveToPending(context.Background(), "pr-1", "dana")
	require.NoError(t, err)

	_, err = f.uc.MoveToPending(context.Background(), "pr-1", "dana")
	assert.ErrorIs(t, err, domain.ErrConflict, "una solicitud ya ordered no se mueve dos veces")
}

// ──────────────────────────────────────────────────────────────────────────────
// EditPending: self-loop mientras está pendiente
// ──────────────────────────────────────────────────────────────────────────────

func TestEditPending_ReemplazaCamposMutables(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Shock cord", Vendor: "Apogee", ExpectedQuantity: 4})

	name := "Shock cord 10m"
	qty := 6
	got, err := f.uc.EditPending(context.Background(), "p-1", receiving.EditPendingInput{
		Name:             &name,
		ExpectedQuantity: &qty,
	}, "sam")
	require.NoError(t, err)

	assert.Equal(t, "p-1", got.ID, "la identidad no cambia")
	assert.Equal(t, "Shock cord 10m", got.Name)
	assert.Equal(t, 6, got.ExpectedQuantity)
	assert.Equal(t, "sam", got.UpdatedBy)
}

func TestEditPending_CantidadNegativaRechazada(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Shock cord", Vendor: "Apogee", ExpectedQuantity: 4})

	qty := -1
	_, err := f.uc.EditPending(context.Background(), "p-1", receiving.EditPendingInput{ExpectedQuantity: &qty}, "sam")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmReceipt: Pending Receipt → Reconciled
// ──────────────────────────────────────────────────────────────────────────────

// La conciliación conserva la cantidad real: esperados 10, recibidos 7 →
// el stock sube exactamente 7 y el pendiente desaparece.
func TestConfirmReceipt_EntregaParcialConservaCantidadReal(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{
		ID:               "p-1",
		Name:             "Flight computer v3",
		Vendor:           "Mouser",
		ExpectedQuantity: 10,
		UnitPrice:        decimal.RequireFromString("54.90"),
	})

	item, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{
		PendingID:      "p-1",
		ActualQuantity: intPtr(7),
		Condition:      "partial",
		QualityNotes:   "3 unidades retenidas en aduana",
		Actor:          "dana",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, item.CurrentStock, "el stock refleja lo recibido, no lo esperado")
	assert.Equal(t, 7, item.Quantity)
	assert.Equal(t, "dana", item.UpdatedBy)

	gone, err := blob.NewPendingRepository(f.store).GetByID("p-1")
	require.NoError(t, err)
	assert.Nil(t, gone, "el pendiente ya no existe tras conciliar")

	logs, err := blob.NewReceivingLogRepository(f.store).List()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 10, logs[0].ExpectedQuantity)
	assert.Equal(t, 7, logs[0].ActualQuantity)
	assert.Equal(t, entity.ConditionPartial, logs[0].Condition)
	assert.Equal(t, "3 unidades retenidas en aduana", logs[0].QualityNotes)
}

// Sin cantidad indicada se usa la esperada (sin recorte silencioso).
func TestConfirmReceipt_SinCantidadUsaEsperada(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Igniter", Vendor: "Cesaroni", ExpectedQuantity: 12})

	item, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{PendingID: "p-1", Actor: "sam"})
	require.NoError(t, err)
	assert.Equal(t, 12, item.CurrentStock)
}

// Una sobre-entrega también se registra tal cual.
func TestConfirmReceipt_SobreEntregaAceptada(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Igniter", Vendor: "Cesaroni", ExpectedQuantity: 5})

	item, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{
		PendingID:      "p-1",
		ActualQuantity: intPtr(8),
		Actor:          "sam",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, item.CurrentStock)
}

// Ítem lógico existente (nombre+proveedor): se incrementa, no se duplica.
func TestConfirmReceipt_IncrementaItemExistentePorNombreYProveedor(t *testing.T) {
	f := newFixture(t)
	invRepo := blob.NewInventoryRepository(f.store)
	require.NoError(t, invRepo.Create(&entity.InventoryItem{
		ID: "inv-1", Name: "igniter", Vendor: "CESARONI", CurrentStock: 3, Quantity: 3, ReorderPoint: 2,
	}))
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Igniter", Vendor: "Cesaroni", ExpectedQuantity: 5})

	item, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{PendingID: "p-1", Actor: "sam"})
	require.NoError(t, err)

	assert.Equal(t, "inv-1", item.ID, "se concilia contra el ítem existente")
	assert.Equal(t, 8, item.CurrentStock, "3 existentes + 5 recibidos")

	all, err := invRepo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1, "no se crean duplicados")
}

// Id de inventario arrastrado en el pendiente tiene prioridad sobre nombre+proveedor.
func TestConfirmReceipt_IdArrastradoTienePrioridad(t *testing.T) {
	f := newFixture(t)
	invRepo := blob.NewInventoryRepository(f.store)
	require.NoError(t, invRepo.Create(&entity.InventoryItem{ID: "inv-1", Name: "Igniter", Vendor: "Cesaroni", CurrentStock: 3, Quantity: 3}))
	require.NoError(t, invRepo.Create(&entity.InventoryItem{ID: "inv-2", Name: "Igniter spare", Vendor: "Cesaroni", CurrentStock: 1, Quantity: 1}))
	f.seedPending(t, entity.PendingItem{ID: "p-1", InventoryID: "inv-2", Name: "Igniter", Vendor: "Cesaroni", ExpectedQuantity: 5})

	item, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{PendingID: "p-1", Actor: "sam"})
	require.NoError(t, err)
	assert.Equal(t, "inv-2", item.ID)
	assert.Equal(t, 6, item.CurrentStock)
}

func TestConfirmReceipt_CantidadNegativaRechazada(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Igniter", Vendor: "Cesaroni", ExpectedQuantity: 5})

	_, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{
		PendingID:      "p-1",
		ActualQuantity: intPtr(-2),
		Actor:          "sam",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfirmReceipt_PendienteInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{PendingID: "no-existe", Actor: "sam"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El aviso de stock bajo se emite cuando la entrega parcial deja el stock en
// el punto de reorden o por debajo.
func TestConfirmReceipt_AvisoStockBajo(t *testing.T) {
	f := newFixture(t)
	invRepo := blob.NewInventoryRepository(f.store)
	require.NoError(t, invRepo.Create(&entity.InventoryItem{
		ID: "inv-1", Name: "O-ring 54mm", Vendor: "Cesaroni", CurrentStock: 0, Quantity: 0, ReorderPoint: 6,
	}))
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "O-ring 54mm", Vendor: "Cesaroni", ExpectedQuantity: 10})

	_, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{
		PendingID:      "p-1",
		ActualQuantity: intPtr(4), // queda en 4 <= reorden 6
		Actor:          "sam",
	})
	require.NoError(t, err)

	require.Len(t, f.notifier.lowStock, 1)
	assert.Equal(t, "inv-1", f.notifier.lowStock[0].ID)
	assert.Equal(t, 4, f.notifier.lowStock[0].CurrentStock)
}

func TestConfirmReceipt_CondicionDesconocidaCaeAGood(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, entity.PendingItem{ID: "p-1", Name: "Igniter", Vendor: "Cesaroni", ExpectedQuantity: 5})

	_, err := f.uc.ConfirmReceipt(context.Background(), receiving.ConfirmReceiptInput{
		PendingID: "p-1",
		Condition: "mas-o-menos",
		Actor:     "sam",
	})
	require.NoError(t, err)

	logs, err := blob.NewReceivingLogRepository(f.store).List()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ConditionGood, logs[0].Condition)
}
