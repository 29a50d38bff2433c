// seed puebla el blob store con datos de demostración: proveedores, inventario,
// solicitudes y un BOM de ejemplo, listos para explorar el tablero.
//
// Uso: go run ./cmd/seed [directorio-de-datos]
// Por defecto escribe en ./data.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/infrastructure/blob"
)

func main() {
	dataDir := "./data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	store, err := blob.NewStore(afero.NewOsFs(), dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inicializar blob store: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	seededBy := "seed"

	vendors := []entity.Vendor{
		{
			ID:            uuid.NewString(),
			Name:          "Apogee Components",
			CompanyName:   "Apogee Components Inc.",
			ContactPerson: "Tim Van Milligan",
			Email:         "orders@apogeerockets.com",
			Location:      entity.Location{City: "Colorado Springs", Country: "USA"},
			PaymentMethods: []entity.PaymentMethod{
				{Method: entity.PaymentCreditCard, Details: "Visa/Mastercard"},
			},
			Category:  "propulsion",
			Rating:    4.8,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: seededBy,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Digi-Key",
			CompanyName:   "Digi-Key Electronics",
			ContactPerson: "Soporte ventas",
			Email:         "sales@digikey.com",
			Location:      entity.Location{City: "Thief River Falls", Country: "USA"},
			PaymentMethods: []entity.PaymentMethod{
				{Method: entity.PaymentCreditCard, Details: "Visa/Mastercard"},
				{Method: entity.PaymentBankTransfer, Details: "Wire"},
			},
			Category:  "electronics",
			Rating:    4.6,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: seededBy,
		},
	}
	vendorRepo := blob.NewVendorRepository(store)
	for i := range vendors {
		must(vendorRepo.Create(&vendors[i]))
	}

	items := []entity.InventoryItem{
		{
			ID:           uuid.NewString(),
			Name:         "Motor H128",
			Category:     "propulsion",
			Vendor:       "Apogee Components",
			Description:  "Motor de pólvora compuesta 29mm",
			UnitPrice:    decimal.NewFromFloat(32.50),
			CurrentStock: 6,
			Quantity:     6,
			ReorderPoint: 4,
			Priority:     entity.PriorityImportant,
			LastUpdated:  now,
			UpdatedBy:    seededBy,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Altímetro StratoLogger",
			Category:     "electronics",
			Vendor:       "Digi-Key",
			Description:  "Altímetro barométrico de doble evento",
			UnitPrice:    decimal.NewFromFloat(54.95),
			CurrentStock: 2,
			Quantity:     2,
			ReorderPoint: 2,
			Priority:     entity.PriorityUrgent,
			LastUpdated:  now,
			UpdatedBy:    seededBy,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Paracaídas 36in",
			Category:     "recovery",
			Vendor:       "Apogee Components",
			UnitPrice:    decimal.NewFromFloat(24.00),
			CurrentStock: 5,
			Quantity:     5,
			ReorderPoint: 2,
			Priority:     entity.PriorityNormal,
			LastUpdated:  now,
			UpdatedBy:    seededBy,
		},
	}
	inventoryRepo := blob.NewInventoryRepository(store)
	for i := range items {
		must(inventoryRepo.Create(&items[i]))
	}

	requests := []entity.PurchaseRequest{
		{
			ID:            uuid.NewString(),
			ItemName:      "Batería LiPo 2S",
			Type:          "electronics",
			UnitPrice:     decimal.NewFromFloat(18.90),
			Quantity:      4,
			Urgency:       entity.UrgencyHigh,
			Vendor:        "Digi-Key",
			RequestedBy:   "Avionics",
			RequestedDate: now,
			Status:        entity.RequestStatusPending,
			Team:          "Avionics",
		},
		{
			ID:            uuid.NewString(),
			ItemName:      "Cordón elástico 1/4in",
			Type:          "recovery",
			UnitPrice:     decimal.NewFromFloat(0.80),
			Quantity:      20,
			Urgency:       entity.UrgencyLow,
			Vendor:        "Apogee Components",
			RequestedBy:   "Recovery",
			RequestedDate: now,
			Status:        entity.RequestStatusPending,
			Team:          "Recovery",
		},
	}
	requestRepo := blob.NewPurchaseRequestRepository(store)
	for i := range requests {
		must(requestRepo.Create(&requests[i]))
	}

	bomRepo := blob.NewBOMRepository(store)
	must(bomRepo.Create(&entity.BOM{
		ID:          uuid.NewString(),
		Name:        "Cohete L1 \"Caupolicán\"",
		Description: "Build de certificación nivel 1",
		Items: []entity.BOMItem{
			{ItemName: "Motor H128", InventoryItemID: items[0].ID, RequiredQuantity: 2, UnitPrice: items[0].UnitPrice, AvailableStock: items[0].CurrentStock},
			{ItemName: "Altímetro StratoLogger", InventoryItemID: items[1].ID, RequiredQuantity: 1, UnitPrice: items[1].UnitPrice, AvailableStock: items[1].CurrentStock},
			{ItemName: "Paracaídas 36in", InventoryItemID: items[2].ID, RequiredQuantity: 1, UnitPrice: items[2].UnitPrice, AvailableStock: items[2].CurrentStock},
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: seededBy,
	}))

	fmt.Printf("datos de demostración escritos en %s\n", dataDir)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}
