// Package blob implementa la persistencia en modo mock: un store de blobs
// JSON por clave sobre un filesystem afero, análogo al local storage del
// navegador. Cada colección se lee y reescribe completa en cada mutación;
// el último escritor gana. Apto solo para un usuario interactivo a la vez.
package blob

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Claves de colección del store.
const (
	KeyInventory        = "inventory"
	KeyPendingInventory = "pending-inventory"
	KeyPurchaseRequests = "purchase-requests"
	KeyVendors          = "vendors"
	KeyBOM              = "bom"
	KeyNotifications    = "notifications"
	KeyReceivingLog     = "receiving-log"
	KeyUsers            = "users"
)

// Store blobs JSON por clave. El mutex serializa operaciones individuales;
// el patrón leer-modificar-escribir de los repos asume un solo escritor
// interactivo (no hay transacción entre colecciones).
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewStore crea el store sobre fs en el directorio dir (se crea si no existe).
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: crear directorio %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// NewMemStore crea un store efímero en memoria (tests y modo demo).
func NewMemStore() *Store {
	s, _ := NewStore(afero.NewMemMapFs(), "/data")
	return s
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load deserializa la colección de la clave en v. Una clave inexistente deja
// v sin tocar (colección vacía); las fechas ISO se rehidratan vía json.
func (s *Store) Load(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("blob: leer %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("blob: decodificar %s: %w", key, err)
	}
	return nil
}

// Save serializa v y reescribe el blob completo de la clave.
func (s *Store) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("blob: codificar %s: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("blob: escribir %s: %w", key, err)
	}
	return nil
}
