// Package csvcodec mapea registros del dominio desde y hacia CSV con esquemas
// de columnas fijos (inventario y solicitudes de compra bidireccional; BOM solo
// exportación). La importación es best-effort: los campos opcionales
// malformados caen a defaults vía validate; solo la ausencia de un campo
// requerido aborta el lote completo.
package csvcodec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DateLayout formato de fecha en columnas CSV (estable bajo round-trip).
const DateLayout = "2006-01-02"

// ImportedBy sello de auditoría para registros creados por importación.
const ImportedBy = "CSV Import"

// ImportError ausencia de un campo requerido. Row es 1-based sobre las filas
// de datos (la cabecera no cuenta); Row 0 señala una cabecera inválida.
type ImportError struct {
	Row   int
	Field string
}

func (e *ImportError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("csv: la cabecera no incluye la columna requerida %q", e.Field)
	}
	return fmt.Sprintf("csv: fila %d: falta el campo requerido %q", e.Row, e.Field)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeUpload normaliza el archivo subido a UTF-8: descarta el BOM si existe
// y decodifica Windows-1252 cuando el contenido no es UTF-8 válido (archivos
// exportados desde Excel en Windows).
func decodeUpload(data []byte) io.Reader {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return bytes.NewReader(data)
	}
	return transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder())
}

// table lee cabecera + filas y resuelve columnas por nombre (con trim).
type table struct {
	index map[string]int
	rows  [][]string
}

func readTable(data []byte) (*table, error) {
	r := csv.NewReader(decodeUpload(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: archivo vacío")
	}
	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	return &table{index: index, rows: records[1:]}, nil
}

// requireColumns valida que la cabecera contenga todas las columnas requeridas.
func (t *table) requireColumns(names ...string) error {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return &ImportError{Row: 0, Field: name}
		}
	}
	return nil
}

// get devuelve el valor de la columna en la fila, o "" si no existe.
func (t *table) get(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// writeCSV serializa cabecera + filas con encoding/csv.
func writeCSV(header []string, rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	w.Flush()
	return sb.String(), w.Error()
}

// Template emite cabecera + una fila de ejemplo compatible con la importación
// del tipo indicado ("inventory" o "purchase-requests").
func Template(kind string) (string, error) {
	switch kind {
	case "inventory":
		return writeCSV(inventoryColumns, [][]string{{
			"Flight computer v3", "Electronics", "Mouser", "STM32 based",
			"54.90", "12", "12", "4", "important", "important-not-urgent", "2026-01-15",
		}})
	case "purchase-requests":
		return writeCSV(requestColumns, [][]string{{
			"CO2 cartridge 16g", "Ejection charges", "Backup charges for recovery test", "consumable",
			"3.20", "24", "high", "Apogee", "Dana R", "2026-02-01", "pending", "Recovery",
			"Needed before static fire", "important-urgent",
		}})
	default:
		return "", fmt.Errorf("csv: tipo de plantilla desconocido %q", kind)
	}
}
