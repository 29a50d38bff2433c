package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/viewcache"
)

func newVendorUseCase() *usecase.VendorUseCase {
	return usecase.NewVendorUseCase(blob.NewVendorRepository(blob.NewMemStore()), viewcache.Noop{})
}

func vendorRequestFixture() *dto.CreateVendorRequest {
	return &dto.CreateVendorRequest{
		Name:          "Apogee Components",
		CompanyName:   "Apogee Components Inc.",
		ContactPerson: "Tim Van Milligan",
		Email:         "orders@apogeerockets.com",
		Location:      entity.Location{City: "Colorado Springs", Country: "USA"},
		PaymentMethods: []entity.PaymentMethod{
			{Method: entity.PaymentCreditCard, Details: "Visa/Mastercard"},
			{Method: entity.PaymentBankTransfer, Details: "Wire"},
		},
		Category: "propulsion",
		Rating:   4.8,
	}
}

func TestVendorCreate_ActivoYRatingAjustado(t *testing.T) {
	uc := newVendorUseCase()

	in := vendorRequestFixture()
	in.Rating = 7.5 // fuera del rango [0, 5]
	created, err := uc.Create(context.Background(), in, "tester")
	require.NoError(t, err)

	assert.True(t, created.IsActive, "todo proveedor nace activo")
	assert.Equal(t, 5.0, created.Rating, "el rating se ajusta al máximo del rango")
	// El orden de los canales de pago es la preferencia del proveedor.
	require.Len(t, created.PaymentMethods, 2)
	assert.Equal(t, entity.PaymentCreditCard, created.PaymentMethods[0].Method)
}

func TestVendorCreate_CanalDePagoDesconocidoSeRechaza(t *testing.T) {
	uc := newVendorUseCase()

	in := vendorRequestFixture()
	in.PaymentMethods = []entity.PaymentMethod{{Method: "trueque"}}
	_, err := uc.Create(context.Background(), in, "tester")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVendorToggleActive_AlternaSinTocarElResto(t *testing.T) {
	uc := newVendorUseCase()

	created, err := uc.Create(context.Background(), vendorRequestFixture(), "tester")
	require.NoError(t, err)
	require.True(t, created.IsActive)

	toggled, err := uc.ToggleActive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	assert.Equal(t, created.Name, toggled.Name)
	assert.Equal(t, created.Rating, toggled.Rating)

	again, err := uc.ToggleActive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, again.IsActive, "el toggle debe ser reversible")
}

func TestVendorToggleActive_IDInexistente_ErrNotFound(t *testing.T) {
	uc := newVendorUseCase()

	_, err := uc.ToggleActive(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
