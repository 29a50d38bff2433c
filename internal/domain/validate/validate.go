// Package validate normaliza campos crudos (CSV, formularios) hacia valores
// del dominio. Todas las funciones son totales: una entrada malformada degrada
// a un valor seguro en lugar de abortar el lote ("best-effort import").
package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Enum normaliza value contra la lista de valores admitidos (case-insensitive,
// con trim). Un valor desconocido cae al def indicado; con def vacío el
// resultado es la cadena vacía (no se adivina un valor).
func Enum(value string, allowed []string, def string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if strings.ToLower(a) == v {
			return a
		}
	}
	return def
}

// EnumFold como Enum pero preservando mayúsculas de la lista admitida aunque
// el valor llegue con cualquier combinación (ej. nombres de equipo "Avionics").
func EnumFold(value string, allowed []string, def string) string {
	v := strings.TrimSpace(value)
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a
		}
	}
	return def
}

// Int convierte raw a entero con piso floor. Entradas no numéricas o por
// debajo del piso devuelven floor. Acepta decimales truncando ("7.9" -> 7).
func Int(raw string, floor int) int {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return floor
		}
		n = int(f)
	}
	if n < floor {
		return floor
	}
	return n
}

// Decimal convierte raw a decimal con piso floor (normalmente cero para
// precios). Entradas no numéricas o por debajo del piso devuelven floor.
func Decimal(raw string, floor decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.LessThan(floor) {
		return floor
	}
	return d
}

// Formatos de fecha aceptados, en orden de preferencia.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// Date interpreta raw como fecha. Una entrada no interpretable cae a now
// (campos de fecha obligatorios siempre quedan poblados).
func Date(raw string, now time.Time) time.Time {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

// Rating acota un rating al rango [0, 5].
func Rating(raw float64) float64 {
	if raw < 0 {
		return 0
	}
	if raw > 5 {
		return 5
	}
	return raw
}
