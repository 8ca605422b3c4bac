package entity

import "time"

// StockLevel representa la cantidad registrada de un producto en una
// ubicación (identidad compuesta producto+ubicación+empresa).
// La cantidad es entera con signo: negativa significa sobreventa o stock de
// origen desconocido, no es un error. Las filas se crean perezosamente con
// el primer movimiento y nunca se eliminan.
type StockLevel struct {
	CompanyID  string
	ProductID  string
	LocationID string
	Quantity   int64
	UpdatedAt  time.Time
}

// IsLowStock decide si un producto queda en stock bajo dado su mínimo y el
// total sumado en todas sus ubicaciones. La comparación es inclusiva
// (total == mínimo cuenta como bajo) y min_stock en cero exime al producto.
// La consulta SQL de conteo aplica exactamente esta misma regla.
func IsLowStock(minStock, total int64) bool {
	return minStock > 0 && total <= minStock
}
