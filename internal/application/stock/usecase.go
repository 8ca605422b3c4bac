// Package stock contiene los casos de uso de lectura del libro de stock:
// stock actual filtrable y conteo de productos con stock bajo.
package stock

import (
	"github.com/tu-usuario/warehouse-pro/internal/application/dto"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// UseCase consultas read-only sobre StockLevel.
type UseCase struct {
	stockRepo repository.StockLevelRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockLevelRepository) *UseCase {
	return &UseCase{stockRepo: stockRepo}
}

// CurrentStock lista el stock actual (filas con cantidad distinta de cero,
// ordenadas por nombre de producto) aplicando el filtro tipado.
func (uc *UseCase) CurrentStock(companyID string, filter repository.StockFilter, limit, offset int) (*dto.StockListResponse, error) {
	lines, err := uc.stockRepo.CurrentStock(companyID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.StockLineResponse{
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			SKU:          l.SKU,
			LocationID:   l.LocationID,
			LocationName: l.LocationName,
			Quantity:     l.Quantity,
		})
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// LowStock cuenta los productos con min_stock > 0 cuyo stock total (sumado en
// todas las ubicaciones) es menor o igual a su mínimo. min_stock = 0 exime al
// producto de esta contabilidad.
func (uc *UseCase) LowStock(companyID string) (*dto.LowStockResponse, error) {
	count, err := uc.stockRepo.CountLowStock(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.LowStockResponse{Count: count}, nil
}
