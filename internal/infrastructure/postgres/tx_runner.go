package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/warehouse-pro/internal/application/transfer"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// Ensure TxRunner implements transfer.TxRunner.
var _ transfer.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El store aporta el límite transaccional (commit todo-o-nada); el motor de
// traslados solo decide qué pasa dentro.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Cualquier error de fn aborta la transacción completa:
// ninguna mutación parcial del libro de stock queda visible.
func (r *TxRunner) Run(ctx context.Context, fn func(
	transferRepo repository.StockTransferRepository,
	stockRepo repository.StockLevelRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	transferRepo := NewStockTransferRepository(tx)
	stockRepo := NewStockLevelRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(transferRepo, stockRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
