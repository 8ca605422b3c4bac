package repository

import "github.com/tu-usuario/warehouse-pro/internal/domain/entity"

// StockFilter filtro tipado para consultas de stock (variante etiquetada en
// lugar de filtros dinámicos sin tipo). Campos vacíos = sin filtrar.
type StockFilter struct {
	ProductID   string
	LocationID  string
	WarehouseID string // filtra por las ubicaciones de la bodega
}

// StockLine una fila del reporte de stock actual (producto + ubicación +
// cantidad, con los nombres ya resueltos para el listado).
type StockLine struct {
	ProductID    string
	ProductName  string
	SKU          string
	LocationID   string
	LocationName string
	Quantity     int64
}

// StockLevelRepository define el puerto del libro de stock: filas
// (empresa, producto, ubicación) -> cantidad con signo.
// Usado dentro de transacciones para garantizar consistencia.
type StockLevelRepository interface {
	// Get devuelve la fila o una fila en cero si no existe (creación perezosa).
	Get(companyID, productID, locationID string) (*entity.StockLevel, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(companyID, productID, locationID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error

	// CurrentStock lista las filas con cantidad distinta de cero, ordenadas
	// por nombre de producto, aplicando el filtro.
	CurrentStock(companyID string, filter StockFilter, limit, offset int) ([]StockLine, error)
	// CountLowStock cuenta productos con min_stock > 0 cuyo stock sumado en
	// todas las ubicaciones es <= min_stock (frontera inclusiva).
	CountLowStock(companyID string) (int, error)
}
