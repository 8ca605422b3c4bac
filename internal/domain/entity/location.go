package entity

import "time"

// Tipos de ubicación (espejo del enum en la tabla locations).
const (
	LocationTypeView          = "VIEW"           // agrupador, no almacena stock
	LocationTypeInternal      = "INTERNAL"       // ubicación física dentro de una bodega
	LocationTypeCustomer      = "CUSTOMER"       // virtual: stock entregado a clientes
	LocationTypeVendor        = "VENDOR"         // virtual: stock de proveedores
	LocationTypeInventoryLoss = "INVENTORY_LOSS" // contrapartida de ajustes
	LocationTypeProduction    = "PRODUCTION"     // consumo/producción
	LocationTypeTransit       = "TRANSIT"        // en tránsito entre bodegas
)

// ValidLocationType indica si el tipo pertenece al enum soportado.
func ValidLocationType(t string) bool {
	switch t {
	case LocationTypeView, LocationTypeInternal, LocationTypeCustomer,
		LocationTypeVendor, LocationTypeInventoryLoss, LocationTypeProduction,
		LocationTypeTransit:
		return true
	}
	return false
}

// Location representa una ubicación de inventario. Puede colgar de otra
// ubicación (árbol vía ParentID) y pertenecer opcionalmente a una bodega.
type Location struct {
	ID          string
	CompanyID   string
	Name        string
	ShortCode   string
	Type        string // ver constantes LocationType*
	ParentID    *string
	WarehouseID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
