package entity

import "time"

// Canales de pago reconocidos para un proveedor.
const (
	PaymentBankTransfer = "bank-transfer"
	PaymentCreditCard   = "credit-card"
	PaymentMobileMoney  = "mobile-money"
	PaymentPaypal       = "paypal"
	PaymentCash         = "cash"
)

// PaymentMethodKinds valores admitidos para PaymentMethod.Method.
var PaymentMethodKinds = []string{PaymentBankTransfer, PaymentCreditCard, PaymentMobileMoney, PaymentPaypal, PaymentCash}

// Coordinates ubicación geográfica opcional de un proveedor.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location dirección física del proveedor.
type Location struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Region      string       `json:"region,omitempty"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// PaymentMethod un canal de pago aceptado por el proveedor; el orden del slice
// es el orden de preferencia.
type PaymentMethod struct {
	Method         string `json:"method"`
	Details        string `json:"details"`
	AccountName    string `json:"accountName,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// Vendor representa un proveedor registrado.
// Invariante: Rating en [0, 5].
type Vendor struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CompanyName    string          `json:"companyName"`
	ContactPerson  string          `json:"contactPerson"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       Location        `json:"location"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Category       string          `json:"category"`
	Rating         float64         `json:"rating"`
	Notes          string          `json:"notes,omitempty"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	CreatedBy      string          `json:"createdBy"`
}
