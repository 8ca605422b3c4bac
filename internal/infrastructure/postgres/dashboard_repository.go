package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo conteos agregados para el tablero sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountPendingTransfers cuenta traslados del tipo dado aún no completados
// (DRAFT, WAITING o READY).
func (r *DashboardRepo) CountPendingTransfers(companyID, transferType string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_transfers
		WHERE company_id = $1 AND type = $2
		  AND status IN ('DRAFT', 'WAITING', 'READY')`
	var count int
	if err := r.q.QueryRow(context.Background(), query, companyID, transferType).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending transfers: %w", err)
	}
	return count, nil
}
