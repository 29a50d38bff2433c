package validate_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// TestEnum_ValorDesconocidoCaeAlDefault verifica la política best-effort:
// un valor fuera de la lista admitida nunca falla, cae al default.
func TestEnum_ValorDesconocidoCaeAlDefault(t *testing.T) {
	got := validate.Enum("bogus", entity.Priorities, entity.PriorityNormal)
	assert.Equal(t, entity.PriorityNormal, got)
}

func TestEnum_CaseInsensitiveYTrim(t *testing.T) {
	got := validate.Enum("  URGENT ", entity.Priorities, entity.PriorityNormal)
	assert.Equal(t, entity.PriorityUrgent, got)
}

// Sin default sensato (cuadrante Eisenhower) el resultado es vacío, no un
// valor adivinado.
func TestEnum_SinDefaultQuedaVacio(t *testing.T) {
	got := validate.Enum("whatever", entity.Quadrants, "")
	assert.Equal(t, "", got)

	got = validate.Enum("Important-Urgent", entity.Quadrants, "")
	assert.Equal(t, entity.QuadrantImportantUrgent, got)
}

func TestEnumFold_PreservaMayusculasDeLaLista(t *testing.T) {
	teams := []string{"Avionics", "Telemetry", "Parachute", "Recovery"}
	assert.Equal(t, "Telemetry", validate.EnumFold("telemetry", teams, "Avionics"))
	assert.Equal(t, "Avionics", validate.EnumFold("propulsion", teams, "Avionics"))
}

func TestInt_Coercion(t *testing.T) {
	cases := []struct {
		raw   string
		floor int
		want  int
	}{
		{"42", 0, 42},
		{"abc", 0, 0},
		{"", 0, 0},
		{"-5", 0, 0},
		{"7.9", 0, 7},
		{" 12 ", 0, 12},
		{"3", 10, 10}, // por debajo del piso
	}
	for _, c := range cases {
		assert.Equal(t, c.want, validate.Int(c.raw, c.floor), "raw=%q", c.raw)
	}
}

func TestDecimal_Coercion(t *testing.T) {
	assert.True(t, validate.Decimal("19.99", decimal.Zero).Equal(decimal.RequireFromString("19.99")))
	assert.True(t, validate.Decimal("no-es-numero", decimal.Zero).Equal(decimal.Zero))
	assert.True(t, validate.Decimal("-3.50", decimal.Zero).Equal(decimal.Zero))
}

func TestDate_FormatosYDefault(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	got := validate.Date("2026-01-15", now)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got)

	// Entrada no interpretable cae a now
	assert.Equal(t, now, validate.Date("hace dos semanas", now))
	assert.Equal(t, now, validate.Date("", now))
}

func TestRating_Acotado(t *testing.T) {
	assert.Equal(t, 0.0, validate.Rating(-1))
	assert.Equal(t, 5.0, validate.Rating(9.3))
	assert.Equal(t, 4.5, validate.Rating(4.5))
}
