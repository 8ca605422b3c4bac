package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-pro/internal/application/dto"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo del tablero: traslados
// pendientes por bucket (recepciones, entregas, internos), productos con
// stock bajo y total de productos.
//
// Fuente de datos: consultas read-only; no toca el motor de traslados.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	stockRepo     repository.StockLevelRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashboardRepo repository.DashboardRepository,
	stockRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo: dashboardRepo,
		stockRepo:     stockRepo,
		productRepo:   productRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
// Las cinco consultas se lanzan en paralelo (goroutines + canales).
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}

	receiptsCh := make(chan countResult, 1)
	deliveriesCh := make(chan countResult, 1)
	internalCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountPendingTransfers(companyID, entity.TransferTypeIncoming)
		receiptsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountPendingTransfers(companyID, entity.TransferTypeOutgoing)
		deliveriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountPendingTransfers(companyID, entity.TransferTypeInternal)
		internalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stockRepo.CountLowStock(companyID)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.productRepo.CountByCompany(companyID)
		productsCh <- countResult{n, err}
	}()

	receipts := <-receiptsCh
	deliveries := <-deliveriesCh
	internal := <-internalCh
	lowStock := <-lowStockCh
	products := <-productsCh

	if receipts.err != nil {
		return nil, fmt.Errorf("dashboard: recepciones pendientes: %w", receipts.err)
	}
	if deliveries.err != nil {
		return nil, fmt.Errorf("dashboard: entregas pendientes: %w", deliveries.err)
	}
	if internal.err != nil {
		return nil, fmt.Errorf("dashboard: traslados internos pendientes: %w", internal.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", products.err)
	}

	return &dto.DashboardSummaryDTO{
		PendingReceipts:   receipts.n,
		PendingDeliveries: deliveries.n,
		PendingInternal:   internal.n,
		LowStockProducts:  lowStock.n,
		TotalProducts:     products.n,
	}, nil
}
