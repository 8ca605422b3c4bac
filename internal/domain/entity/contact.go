package entity

import "time"

// Tipos de contacto.
const (
	ContactTypeCustomer = "CUSTOMER"
	ContactTypeVendor   = "VENDOR"
)

// Contact representa un cliente o proveedor de la empresa, asociable a
// traslados entrantes (proveedor) o salientes (cliente).
type Contact struct {
	ID        string
	CompanyID string
	Name      string
	Type      string // CUSTOMER | VENDOR
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
