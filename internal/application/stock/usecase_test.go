package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-pro/internal/application/stock"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// stubStockRepo devuelve líneas fijas y registra el filtro recibido.
type stubStockRepo struct {
	lines    []repository.StockLine
	lowCount int

	gotFilter repository.StockFilter
	gotLimit  int
	gotOffset int
}

func (s *stubStockRepo) Get(string, string, string) (*entity.StockLevel, error)          { return nil, nil }
func (s *stubStockRepo) GetForUpdate(string, string, string) (*entity.StockLevel, error) { return nil, nil }
func (s *stubStockRepo) Upsert(*entity.StockLevel) error                                 { return nil }

func (s *stubStockRepo) CurrentStock(_ string, filter repository.StockFilter, limit, offset int) ([]repository.StockLine, error) {
	s.gotFilter = filter
	s.gotLimit = limit
	s.gotOffset = offset
	return s.lines, nil
}

func (s *stubStockRepo) CountLowStock(string) (int, error) {
	return s.lowCount, nil
}

func TestCurrentStock_MapeaLineasYPropagarFiltro(t *testing.T) {
	repo := &stubStockRepo{
		lines: []repository.StockLine{
			{ProductID: "p1", ProductName: "Arandelas", SKU: "AR-01", LocationID: "l1", LocationName: "Estantería A", Quantity: 12},
			{ProductID: "p2", ProductName: "Tornillos", SKU: "TO-01", LocationID: "l1", LocationName: "Estantería A", Quantity: -3},
		},
	}
	uc := stock.NewUseCase(repo)

	filter := repository.StockFilter{WarehouseID: "wh-1"}
	out, err := uc.CurrentStock("company-a", filter, 20, 0)
	require.NoError(t, err)

	assert.Equal(t, filter, repo.gotFilter)
	assert.Equal(t, 20, repo.gotLimit)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Arandelas", out.Items[0].ProductName)
	// Las cantidades negativas del libro se reportan tal cual
	assert.EqualValues(t, -3, out.Items[1].Quantity)
	assert.Equal(t, 20, out.Page.Limit)
}

func TestLowStock_DevuelveConteo(t *testing.T) {
	repo := &stubStockRepo{lowCount: 4}
	uc := stock.NewUseCase(repo)

	out, err := uc.LowStock("company-a")
	require.NoError(t, err)
	assert.Equal(t, 4, out.Count)
}

// computedStockRepo calcula el conteo desde datos en memoria con la misma
// regla inclusiva que aplica el HAVING del repositorio SQL.
type computedStockRepo struct {
	stubStockRepo
	products []entity.Product
	totals   map[string]int64
}

func (s *computedStockRepo) CountLowStock(string) (int, error) {
	count := 0
	for _, p := range s.products {
		if entity.IsLowStock(p.MinStock, s.totals[p.ID]) {
			count++
		}
	}
	return count, nil
}

func TestLowStock_LimiteInclusivoYExencionPorMinimoCero(t *testing.T) {
	repo := &computedStockRepo{
		products: []entity.Product{
			{ID: "p-limite", MinStock: 10},
			{ID: "p-sobrado", MinStock: 10},
			{ID: "p-exento", MinStock: 0},
		},
		totals: map[string]int64{"p-limite": 10, "p-sobrado": 11, "p-exento": 0},
	}
	uc := stock.NewUseCase(repo)

	out, err := uc.LowStock("company-a")
	require.NoError(t, err)

	// Solo cuenta el producto exactamente en el mínimo: el límite es
	// inclusivo y min_stock en cero exime al producto sin stock.
	assert.Equal(t, 1, out.Count)
}
