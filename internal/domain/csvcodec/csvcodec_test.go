package csvcodec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rocketry-hub/internal/domain/csvcodec"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

var testTeams = []string{"Avionics", "Telemetry", "Parachute", "Recovery"}

func buildTestItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{
			ID:                 "inv-001",
			Name:               "Flight computer v3",
			Category:           "Electronics",
			Vendor:             "Mouser",
			Description:        "STM32 based",
			UnitPrice:          decimal.RequireFromString("54.90"),
			CurrentStock:       12,
			Quantity:           12,
			ReorderPoint:       4,
			Priority:           entity.PriorityImportant,
			EisenhowerQuadrant: entity.QuadrantImportantNotUrgent,
			LastUpdated:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedBy:          "dana",
		},
		{
			ID:           "inv-002",
			Name:         "Shock cord 10m",
			Category:     "Recovery",
			Vendor:       "Apogee",
			UnitPrice:    decimal.RequireFromString("8.5"),
			CurrentStock: 3,
			Quantity:     3,
			ReorderPoint: 2,
			Priority:     entity.PriorityNormal,
			LastUpdated:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			UpdatedBy:    "sam",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip: FromCSV(ToCSV(x)) reproduce todos los campos del esquema
// (salvo identidad regenerada y el sello UpdatedBy de importación).
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_RoundTripPreservaCampos(t *testing.T) {
	items := buildTestItems()

	text, err := csvcodec.InventoryToCSV(items)
	require.NoError(t, err)

	back, err := csvcodec.InventoryFromCSV([]byte(text))
	require.NoError(t, err)
	require.Len(t, back, len(items))

	for i, want := range items {
		got := back[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Vendor, got.Vendor)
		assert.Equal(t, want.Description, got.Description)
		assert.True(t, want.UnitPrice.Equal(got.UnitPrice), "precio fila %d", i)
		assert.Equal(t, want.CurrentStock, got.CurrentStock)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.Equal(t, want.ReorderPoint, got.ReorderPoint)
		assert.Equal(t, want.Priority, got.Priority)
		assert.Equal(t, want.EisenhowerQuadrant, got.EisenhowerQuadrant)
		assert.Equal(t, want.LastUpdated, got.LastUpdated)

		// Identidad siempre nueva, sello de importación siempre presente
		assert.NotEqual(t, want.ID, got.ID)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, csvcodec.ImportedBy, got.UpdatedBy)
	}
}

// La serialización es idempotente: exportar lo importado produce el mismo texto.
func TestInventory_SerializacionEstable(t *testing.T) {
	text1, err := csvcodec.InventoryToCSV(buildTestItems())
	require.NoError(t, err)

	back, err := csvcodec.InventoryFromCSV([]byte(text1))
	require.NoError(t, err)

	text2, err := csvcodec.InventoryToCSV(back)
	require.NoError(t, err)
	assert.Equal(t, text1, text2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Best-effort: opcionales malformados degradan a defaults, nunca abortan.
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_DefaultsBestEffort(t *testing.T) {
	csvText := "Item Name,Category,Vendor,Priority,Current Stock,Unit Price\n" +
		"Igniter,Propulsion,Cesaroni,bogus,abc,-9"

	items, err := csvcodec.InventoryFromCSV([]byte(csvText))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, entity.PriorityNormal, items[0].Priority, `Priority "bogus" debe caer a normal`)
	assert.Equal(t, 0, items[0].CurrentStock, `Current Stock "abc" debe caer a 0`)
	assert.True(t, items[0].UnitPrice.IsZero(), "precio negativo debe caer a 0")
	assert.Equal(t, "", items[0].EisenhowerQuadrant, "columna ausente sin default queda vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos requeridos: su ausencia aborta el lote completo, cero efectos.
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_CampoRequeridoVacioAbortaLote(t *testing.T) {
	csvText := "Item Name,Category,Vendor\n" +
		"Igniter,Propulsion,Cesaroni\n" +
		"Shock cord,Recovery,\n" + // Vendor vacío en la fila 2
		"Nose cone,Airframe,Madcow"

	items, err := csvcodec.InventoryFromCSV([]byte(csvText))
	require.Error(t, err)
	assert.Nil(t, items, "un lote fallido no debe producir registros parciales")

	var impErr *csvcodec.ImportError
	require.ErrorAs(t, err, &impErr)
	assert.Equal(t, 2, impErr.Row, "el error debe señalar la fila 1-based")
	assert.Equal(t, "Vendor", impErr.Field)
}

func TestInventory_ColumnaRequeridaAusenteEnCabecera(t *testing.T) {
	csvText := "Item Name,Category\nIgniter,Propulsion"

	_, err := csvcodec.InventoryFromCSV([]byte(csvText))
	var impErr *csvcodec.ImportError
	require.ErrorAs(t, err, &impErr)
	assert.Equal(t, 0, impErr.Row, "fila 0 señala cabecera inválida")
	assert.Equal(t, "Vendor", impErr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Codificaciones de archivo: BOM UTF-8 y Windows-1252 (exportes de Excel).
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_ToleraBOMUTF8(t *testing.T) {
	csvText := "\xEF\xBB\xBFItem Name,Category,Vendor\nIgniter,Propulsion,Cesaroni"

	items, err := csvcodec.InventoryFromCSV([]byte(csvText))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Igniter", items[0].Name)
}

func TestInventory_ToleraWindows1252(t *testing.T) {
	// "Parachute — 1m" con em dash en Windows-1252 (0x97), inválido como UTF-8
	csvText := []byte("Item Name,Category,Vendor\nParachute \x97 1m,Recovery,Fruity Chutes")

	items, err := csvcodec.InventoryFromCSV(csvText)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Name, "Parachute")
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestRequests_RoundTrip(t *testing.T) {
	requests := []entity.PurchaseRequest{{
		ID:            "pr-001",
		ItemName:      "CO2 cartridge 16g",
		Title:         "Ejection charges",
		UnitPrice:     decimal.RequireFromString("3.20"),
		Quantity:      24,
		Urgency:       entity.UrgencyHigh,
		Vendor:        "Apogee",
		RequestedBy:   "Dana R",
		RequestedDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:        entity.RequestStatusPending,
		Team:          "Recovery",
	}}

	text, err := csvcodec.RequestsToCSV(requests)
	require.NoError(t, err)

	back, err := csvcodec.RequestsFromCSV([]byte(text), testTeams)
	require.NoError(t, err)
	require.Len(t, back, 1)

	got := back[0]
	want := requests[0]
	assert.Equal(t, want.ItemName, got.ItemName)
	assert.Equal(t, want.Title, got.Title)
	assert.True(t, want.UnitPrice.Equal(got.UnitPrice))
	assert.Equal(t, want.Quantity, got.Quantity)
	assert.Equal(t, want.Urgency, got.Urgency)
	assert.Equal(t, want.Vendor, got.Vendor)
	assert.Equal(t, want.RequestedBy, got.RequestedBy)
	assert.Equal(t, want.RequestedDate, got.RequestedDate)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.Team, got.Team)
	assert.NotEqual(t, want.ID, got.ID)
}

func TestRequests_EquipoDesconocidoCaeAlPrimero(t *testing.T) {
	csvText := "Item Name,Vendor,Requested By,Team\nIgniter,Cesaroni,Sam,Propulsion"

	back, err := csvcodec.RequestsFromCSV([]byte(csvText), testTeams)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "Avionics", back[0].Team)
}

func TestRequests_RequeridoAusenteAborta(t *testing.T) {
	csvText := "Item Name,Vendor,Requested By\nIgniter,,Sam"

	_, err := csvcodec.RequestsFromCSV([]byte(csvText), testTeams)
	var impErr *csvcodec.ImportError
	require.ErrorAs(t, err, &impErr)
	assert.Equal(t, 1, impErr.Row)
	assert.Equal(t, "Vendor", impErr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// BOM (solo exportación) y plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestBOM_ExportaFaltanteYCostoComputados(t *testing.T) {
	bom := entity.BOM{
		Name: "Sustainer airframe",
		Items: []entity.BOMItem{
			{ItemName: "Body tube 98mm", RequiredQuantity: 3, AvailableStock: 1, UnitPrice: decimal.RequireFromString("42.00")},
			{ItemName: "Centering ring", RequiredQuantity: 2, AvailableStock: 6, UnitPrice: decimal.RequireFromString("4.50")},
		},
	}

	text, err := csvcodec.BOMToCSV([]entity.BOM{bom})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], ",2,")   // shortfall = 3 - 1
	assert.Contains(t, lines[1], "126")   // line cost = 42 × 3
	assert.Contains(t, lines[2], ",0,")   // sin faltante
	assert.Contains(t, lines[2], "9")     // line cost = 4.5 × 2
}

func TestTemplate_CompatibleConImportacion(t *testing.T) {
	invTpl, err := csvcodec.Template("inventory")
	require.NoError(t, err)
	items, err := csvcodec.InventoryFromCSV([]byte(invTpl))
	require.NoError(t, err)
	assert.Len(t, items, 1)

	reqTpl, err := csvcodec.Template("purchase-requests")
	require.NoError(t, err)
	requests, err := csvcodec.RequestsFromCSV([]byte(reqTpl), testTeams)
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	_, err = csvcodec.Template("vendors")
	assert.Error(t, err, "tipo desconocido debe fallar")
}
