package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/csvcodec"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/viewcache"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// notifierSpy registra los avisos de stock bajo emitidos por el caso de uso.
type notifierSpy struct {
	items []entity.InventoryItem
}

func (s *notifierSpy) LowStock(item entity.InventoryItem) {
	s.items = append(s.items, item)
}

// cacheSpy implementación en memoria de la caché de vistas, con contadores.
type cacheSpy struct {
	entries     map[string][]byte
	invalidated []string
}

func newCacheSpy() *cacheSpy {
	return &cacheSpy{entries: map[string][]byte{}}
}

func (s *cacheSpy) Get(_ context.Context, collection string) ([]byte, bool) {
	payload, ok := s.entries[collection]
	return payload, ok
}

func (s *cacheSpy) Set(_ context.Context, collection string, payload []byte) {
	s.entries[collection] = payload
}

func (s *cacheSpy) Invalidate(_ context.Context, collection string) {
	delete(s.entries, collection)
	s.invalidated = append(s.invalidated, collection)
}

func createRequestFixture() *dto.CreateInventoryItemRequest {
	return &dto.CreateInventoryItemRequest{
		Name:         "Motor H128",
		Category:     "propulsion",
		Vendor:       "Apogee Components",
		UnitPrice:    decimal.NewFromFloat(32.50),
		CurrentStock: 6,
		Quantity:     6,
		ReorderPoint: 4,
		Priority:     entity.PriorityImportant,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_PrioridadInvalidaSeNormaliza(t *testing.T) {
	uc := usecase.NewInventoryUseCase(blob.NewInventoryRepository(blob.NewMemStore()), viewcache.Noop{}, nil)

	in := createRequestFixture()
	in.Priority = "bananas"
	created, err := uc.Create(context.Background(), in, "tester")
	require.NoError(t, err)

	assert.Equal(t, entity.PriorityNormal, created.Priority,
		"una prioridad desconocida debe degradar al default, no rechazar el alta")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "tester", created.UpdatedBy)
}

func TestInventoryCreate_CantidadesNegativasSeRechazan(t *testing.T) {
	uc := usecase.NewInventoryUseCase(blob.NewInventoryRepository(blob.NewMemStore()), viewcache.Noop{}, nil)

	in := createRequestFixture()
	in.CurrentStock = -1
	_, err := uc.Create(context.Background(), in, "tester")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = createRequestFixture()
	in.UnitPrice = decimal.NewFromFloat(-0.01)
	_, err = uc.Create(context.Background(), in, "tester")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Un patch vacío no cambia campos de negocio pero siempre re-estampa la
// auditoría: dos guardados idénticos difieren solo en LastUpdated/UpdatedBy.
func TestInventoryUpdate_PatchVacioReestampaAuditoria(t *testing.T) {
	uc := usecase.NewInventoryUseCase(blob.NewInventoryRepository(blob.NewMemStore()), viewcache.Noop{}, nil)

	created, err := uc.Create(context.Background(), createRequestFixture(), "tester")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := uc.Update(context.Background(), created.ID, &dto.UpdateInventoryItemRequest{}, "otro-actor")
	require.NoError(t, err)

	assert.True(t, updated.LastUpdated.After(created.LastUpdated),
		"LastUpdated debe avanzar aunque el patch no cambie nada")
	assert.Equal(t, "otro-actor", updated.UpdatedBy)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.CurrentStock, updated.CurrentStock)
	assert.True(t, created.UnitPrice.Equal(updated.UnitPrice))
}

func TestInventoryUpdate_StockBajoEmiteNotificacion(t *testing.T) {
	spy := &notifierSpy{}
	uc := usecase.NewInventoryUseCase(blob.NewInventoryRepository(blob.NewMemStore()), viewcache.Noop{}, spy)

	created, err := uc.Create(context.Background(), createRequestFixture(), "tester")
	require.NoError(t, err)
	require.Empty(t, spy.items, "el alta con stock sano no notifica")

	nuevoStock := 4 // igual al punto de reorden
	_, err = uc.Update(context.Background(), created.ID, &dto.UpdateInventoryItemRequest{CurrentStock: &nuevoStock}, "tester")
	require.NoError(t, err)

	require.Len(t, spy.items, 1, "caer al punto de reorden debe emitir un aviso")
	assert.Equal(t, "Motor H128", spy.items[0].Name)
	assert.Equal(t, 4, spy.items[0].CurrentStock)
}

func TestInventoryUpdate_IDInexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewInventoryUseCase(blob.NewInventoryRepository(blob.NewMemStore()), viewcache.Noop{}, nil)

	_, err := uc.Update(context.Background(), "no-existe", &dto.UpdateInventoryItemRequest{}, "tester")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caché de vistas
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryList_CacheaYLasMutacionesInvalidan(t *testing.T) {
	cache := newCacheSpy()
	uc := usecase.NewInventoryUseCase(blob.NewInventoryRepository(blob.NewMemStore()), cache, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequestFixture(), "tester")
	require.NoError(t, err)

	first, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Total)
	assert.Contains(t, cache.entries, "inventory", "el listado debe poblar la vista cacheada")

	// La segunda lectura sirve desde caché (misma respuesta).
	second, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.NotContains(t, cache.entries, "inventory", "toda mutación invalida la vista")

	after, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Import CSV
// ──────────────────────────────────────────────────────────────────────────────

// Un lote con una fila inválida aborta completo: ninguna fila se persiste.
func TestInventoryImportCSV_LoteInvalidoSinEfectosParciales(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())
	uc := usecase.NewInventoryUseCase(repo, viewcache.Noop{}, nil)

	csv := "Item Name,Category,Vendor\n" +
		"Motor H128,propulsion,Apogee Components\n" +
		"Altímetro StratoLogger,electronics,\n" // Vendor vacío en la fila 2

	n, err := uc.ImportCSV(context.Background(), []byte(csv))
	require.Error(t, err)
	assert.Zero(t, n)

	var importErr *csvcodec.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, 2, importErr.Row)
	assert.Equal(t, "Vendor", importErr.Field)

	items, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, items, "un lote inválido no deja efectos parciales")
}

func TestInventoryImportCSV_LoteValidoImportaTodo(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())
	cache := newCacheSpy()
	uc := usecase.NewInventoryUseCase(repo, cache, nil)

	csv := "Item Name,Category,Vendor,Unit Price,Current Stock\n" +
		"Motor H128,propulsion,Apogee Components,32.50,6\n" +
		"Paracaídas 36in,recovery,Apogee Components,24.00,5\n"

	n, err := uc.ImportCSV(context.Background(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, cache.invalidated, "inventory")

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, csvcodec.ImportedBy, items[0].UpdatedBy)
}
