package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-pro/internal/application/usecase"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// stubDashboardRepo conteos fijos por tipo de traslado.
type stubDashboardRepo struct {
	pending map[string]int
	err     error
}

func (s *stubDashboardRepo) CountPendingTransfers(_, transferType string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.pending[transferType], nil
}

type stubCountStockRepo struct{ low int }

func (s *stubCountStockRepo) Get(string, string, string) (*entity.StockLevel, error) {
	return nil, nil
}
func (s *stubCountStockRepo) GetForUpdate(string, string, string) (*entity.StockLevel, error) {
	return nil, nil
}
func (s *stubCountStockRepo) Upsert(*entity.StockLevel) error { return nil }
func (s *stubCountStockRepo) CurrentStock(string, repository.StockFilter, int, int) ([]repository.StockLine, error) {
	return nil, nil
}
func (s *stubCountStockRepo) CountLowStock(string) (int, error) { return s.low, nil }

type stubCountProductRepo struct{ total int }

func (s *stubCountProductRepo) Create(*entity.Product) error { return nil }
func (s *stubCountProductRepo) GetByID(string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubCountProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubCountProductRepo) Update(*entity.Product) error { return nil }
func (s *stubCountProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubCountProductRepo) CountByCompany(string) (int, error) { return s.total, nil }
func (s *stubCountProductRepo) Delete(string) error                { return nil }

func TestGetSummary_AgregaConteos(t *testing.T) {
	uc := usecase.NewDashboardUseCase(
		&stubDashboardRepo{pending: map[string]int{
			entity.TransferTypeIncoming: 3,
			entity.TransferTypeOutgoing: 2,
			entity.TransferTypeInternal: 1,
		}},
		&stubCountStockRepo{low: 5},
		&stubCountProductRepo{total: 40},
	)

	out, err := uc.GetSummary(context.Background(), "company-a")
	require.NoError(t, err)

	assert.Equal(t, 3, out.PendingReceipts)
	assert.Equal(t, 2, out.PendingDeliveries)
	assert.Equal(t, 1, out.PendingInternal)
	assert.Equal(t, 5, out.LowStockProducts)
	assert.Equal(t, 40, out.TotalProducts)
}

func TestGetSummary_PropagaError(t *testing.T) {
	uc := usecase.NewDashboardUseCase(
		&stubDashboardRepo{err: errors.New("db caída")},
		&stubCountStockRepo{},
		&stubCountProductRepo{},
	)

	_, err := uc.GetSummary(context.Background(), "company-a")
	assert.Error(t, err)
}
