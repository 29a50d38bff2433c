package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
// Location y PaymentMethods se guardan como JSONB: son documentos anidados
// sin consultas propias.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, name, company_name, contact_person, email, phone, location, payment_methods, category, rating, notes, is_active, created_at, updated_at, created_by`

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	var location, methods []byte
	err := row.Scan(
		&v.ID, &v.Name, &v.CompanyName, &v.ContactPerson, &v.Email, &v.Phone,
		&location, &methods, &v.Category, &v.Rating, &v.Notes, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt, &v.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if len(location) > 0 {
		if err := json.Unmarshal(location, &v.Location); err != nil {
			return nil, fmt.Errorf("unmarshal vendor location: %w", err)
		}
	}
	if len(methods) > 0 {
		if err := json.Unmarshal(methods, &v.PaymentMethods); err != nil {
			return nil, fmt.Errorf("unmarshal vendor payment methods: %w", err)
		}
	}
	return &v, nil
}

func vendorJSON(v *entity.Vendor) (location, methods []byte, err error) {
	if location, err = json.Marshal(v.Location); err != nil {
		return nil, nil, fmt.Errorf("marshal vendor location: %w", err)
	}
	if methods, err = json.Marshal(v.PaymentMethods); err != nil {
		return nil, nil, fmt.Errorf("marshal vendor payment methods: %w", err)
	}
	return location, methods, nil
}

// List devuelve todos los proveedores ordenados por nombre.
func (r *VendorRepo) List() ([]entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []entity.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	return vendors, rows.Err()
}

// GetByID obtiene un proveedor por ID; nil si no existe.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	vendor, err := scanVendor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return vendor, nil
}

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	location, methods, err := vendorJSON(vendor)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.CompanyName, vendor.ContactPerson, vendor.Email,
		vendor.Phone, location, methods, vendor.Category, vendor.Rating, vendor.Notes,
		vendor.IsActive, vendor.CreatedAt, vendor.UpdatedAt, vendor.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// Update actualiza un proveedor existente; domain.ErrNotFound si no existe.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	location, methods, err := vendorJSON(vendor)
	if err != nil {
		return err
	}
	query := `
		UPDATE vendors
		SET name = $2, company_name = $3, contact_person = $4, email = $5, phone = $6,
		    location = $7, payment_methods = $8, category = $9, rating = $10, notes = $11,
		    is_active = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.CompanyName, vendor.ContactPerson, vendor.Email,
		vendor.Phone, location, methods, vendor.Category, vendor.Rating, vendor.Notes,
		vendor.IsActive, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor; domain.ErrNotFound si no existe.
func (r *VendorRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
