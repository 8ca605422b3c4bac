package entity

import "time"

// Warehouse representa una bodega física; agrupa cero o más ubicaciones
// (Location con WarehouseID apuntando aquí).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	ShortCode string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
