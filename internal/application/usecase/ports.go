package usecase

import (
	"context"
	"fmt"
	"time"
)

// Claves de colección para la caché de vistas; coinciden con las claves del
// blob store para que una mutación invalide exactamente la vista que toca.
const (
	colInventory     = "inventory"
	colRequests      = "purchase-requests"
	colVendors       = "vendors"
	colBOM           = "bom"
	colNotifications = "notifications"
)

// ViewCache puerto de la caché de vistas renderizadas. Best-effort: un miss
// o un fallo nunca rompe la operación.
type ViewCache interface {
	Get(ctx context.Context, collection string) ([]byte, bool)
	Set(ctx context.Context, collection string, payload []byte)
	Invalidate(ctx context.Context, collection string)
}

// Broadcaster empuja eventos en tiempo real a los clientes conectados.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// exportName nombre de descarga de una exportación CSV: <tipo>-<fecha>.csv.
func exportName(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", kind, now.Format("2006-01-02"))
}
