package blob_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
)

func itemFixture(id, name string) entity.InventoryItem {
	return entity.InventoryItem{
		ID:           id,
		Name:         name,
		Category:     "propulsion",
		Vendor:       "Apogee Components",
		UnitPrice:    decimal.NewFromFloat(32.50),
		CurrentStock: 6,
		Quantity:     6,
		ReorderPoint: 4,
		Priority:     entity.PriorityNormal,
		LastUpdated:  time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		UpdatedBy:    "tester",
	}
}

// Una clave que nunca se escribió se comporta como colección vacía.
func TestStore_ClaveInexistente_ColeccionVacia(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())

	items, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	item, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, item, "un ID inexistente debe devolver nil sin error")
}

// El snapshot sobrevive el round-trip por disco: fechas y decimales incluidos.
func TestStore_Rehidratacion_PreservaFechasYDecimales(t *testing.T) {
	store := blob.NewMemStore()
	repo := blob.NewInventoryRepository(store)

	original := itemFixture("item-1", "Motor H128")
	require.NoError(t, repo.Create(&original))

	// Releemos con un repo nuevo sobre el mismo store para forzar la deserialización.
	loaded, err := blob.NewInventoryRepository(store).GetByID("item-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, original.Name, loaded.Name)
	assert.True(t, original.UnitPrice.Equal(loaded.UnitPrice), "el precio decimal debe rehidratarse exacto")
	assert.True(t, original.LastUpdated.Equal(loaded.LastUpdated), "la fecha ISO debe rehidratarse exacta")
}

func TestStore_Update_ReemplazaPorIdentidad(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())

	item := itemFixture("item-1", "Motor H128")
	require.NoError(t, repo.Create(&item))

	item.CurrentStock = 3
	require.NoError(t, repo.Update(&item))

	loaded, err := repo.GetByID("item-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.CurrentStock)
}

// Mutar un registro que ya no existe es un error explícito, no un no-op.
func TestStore_UpdateYDeleteInexistente_RetornanErrNotFound(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())

	fantasma := itemFixture("no-existe", "Fantasma")
	assert.ErrorIs(t, repo.Update(&fantasma), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("no-existe"), domain.ErrNotFound)
}

func TestStore_Delete_NoTocaElResto(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())

	a := itemFixture("item-a", "Motor H128")
	b := itemFixture("item-b", "Altímetro StratoLogger")
	require.NoError(t, repo.Create(&a))
	require.NoError(t, repo.Create(&b))

	require.NoError(t, repo.Delete("item-a"))

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-b", items[0].ID)
}

// La conciliación de recepciones busca el ítem lógico por nombre+proveedor
// sin distinguir mayúsculas.
func TestStore_FindByNameAndVendor_IgnoraMayusculas(t *testing.T) {
	repo := blob.NewInventoryRepository(blob.NewMemStore())

	item := itemFixture("item-1", "Motor H128")
	require.NoError(t, repo.Create(&item))

	found, err := repo.FindByNameAndVendor("MOTOR h128", "apogee components")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "item-1", found.ID)

	missing, err := repo.FindByNameAndVendor("Motor H128", "Otro Proveedor")
	require.NoError(t, err)
	assert.Nil(t, missing, "mismo nombre con otro proveedor es otro ítem lógico")
}
