package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/viewcache"
)

// Faltantes y costos se computan en cada lectura contra el inventario vigente;
// nada denormalizado se persiste ni se sirve desde caché.
func TestBOM_FaltanteYCostoSeComputanEnLectura(t *testing.T) {
	store := blob.NewMemStore()
	invRepo := blob.NewInventoryRepository(store)
	invUC := usecase.NewInventoryUseCase(invRepo, viewcache.Noop{}, nil)
	bomUC := usecase.NewBOMUseCase(blob.NewBOMRepository(store), invRepo, viewcache.Noop{})
	ctx := context.Background()

	motor, err := invUC.Create(ctx, createRequestFixture(), "tester") // stock 6
	require.NoError(t, err)

	created, err := bomUC.Create(ctx, &dto.CreateBOMRequest{
		Name: "Cohete L1",
		Items: []dto.BOMItemInput{
			{ItemName: "Motor H128", InventoryItemID: motor.ID, RequiredQuantity: 10, UnitPrice: decimal.NewFromFloat(32.50)},
			{ItemName: "Tubo fenólico 29mm", RequiredQuantity: 3, UnitPrice: decimal.NewFromFloat(12.00)},
		},
	}, "tester")
	require.NoError(t, err)
	require.Len(t, created.Items, 2)

	// Línea enlazada: stock del inventario, faltante = requerido - disponible.
	assert.Equal(t, 6, created.Items[0].AvailableStock)
	assert.Equal(t, 4, created.Items[0].Shortfall)
	assert.True(t, decimal.NewFromFloat(325.0).Equal(created.Items[0].LineCost))

	// Línea sin enlace: sin stock conocido, el faltante es todo lo requerido.
	assert.Equal(t, 0, created.Items[1].AvailableStock)
	assert.Equal(t, 3, created.Items[1].Shortfall)

	assert.True(t, decimal.NewFromFloat(361.0).Equal(created.TotalCost),
		"el costo total es la suma de las líneas: 10×32.50 + 3×12.00")

	// El stock de inventario cambia; la próxima lectura del BOM lo refleja.
	nuevoStock := 12
	_, err = invUC.Update(ctx, motor.ID, &dto.UpdateInventoryItemRequest{CurrentStock: &nuevoStock}, "tester")
	require.NoError(t, err)

	fresh, err := bomUC.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, fresh.Items[0].AvailableStock)
	assert.Equal(t, 0, fresh.Items[0].Shortfall, "stock suficiente no deja faltante negativo")
}

func TestBOMCreate_CantidadNegativaSeRechaza(t *testing.T) {
	store := blob.NewMemStore()
	bomUC := usecase.NewBOMUseCase(blob.NewBOMRepository(store), blob.NewInventoryRepository(store), viewcache.Noop{})

	_, err := bomUC.Create(context.Background(), &dto.CreateBOMRequest{
		Name:  "Inválido",
		Items: []dto.BOMItemInput{{ItemName: "Motor", RequiredQuantity: -1}},
	}, "tester")
	assert.Error(t, err)
}
