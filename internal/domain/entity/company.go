package entity

import "time"

// Company representa una organización/tenant del sistema. Todo dato de
// inventario (productos, ubicaciones, traslados, stock) pertenece a una
// empresa y las consultas siempre se filtran por ella.
type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
