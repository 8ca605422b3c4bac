package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-ubicación).
// El stock se maneja por ubicación en StockLevel; aquí solo viven los datos
// maestros. MinStock > 0 activa la contabilidad de stock bajo; 0 la exime.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	CostPrice   decimal.Decimal
	SalesPrice  decimal.Decimal
	MinStock    int64
	MaxStock    int64
	UnitMeasure string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
