package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-pro/internal/domain"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

var _ repository.StockTransferRepository = (*StockTransferRepo)(nil)

// StockTransferRepo implementación de traslados sobre PostgreSQL
// (usable con pool o tx).
type StockTransferRepo struct {
	q Querier
}

// NewStockTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransferRepository(q Querier) *StockTransferRepo {
	return &StockTransferRepo{q: q}
}

// Create inserta el traslado y todas sus líneas.
func (r *StockTransferRepo) Create(t *entity.StockTransfer) error {
	ctx := context.Background()
	query := `
		INSERT INTO stock_transfers (
			id, company_id, reference, type, status, contact_id,
			source_location_id, destination_location_id,
			scheduled_date, effective_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.CompanyID, t.Reference, t.Type, t.Status, t.ContactID,
		t.SourceLocationID, t.DestinationLocationID,
		t.ScheduledDate, t.EffectiveDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock transfer: %w", err)
	}

	moveQuery := `
		INSERT INTO stock_moves (
			id, transfer_id, product_id, quantity,
			source_location_id, destination_location_id,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i := range t.Moves {
		m := &t.Moves[i]
		_, err := r.q.Exec(ctx, moveQuery,
			m.ID, m.TransferID, m.ProductID, m.Quantity,
			m.SourceLocationID, m.DestinationLocationID,
			m.Status, m.CreatedAt, m.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("create stock move: %w", err)
		}
	}
	return nil
}

// GetByID devuelve el traslado con sus líneas, o nil si no existe dentro de
// la empresa.
func (r *StockTransferRepo) GetByID(id, companyID string) (*entity.StockTransfer, error) {
	return r.get(id, companyID, false)
}

// GetForUpdate igual que GetByID pero bloquea la fila del traslado.
func (r *StockTransferRepo) GetForUpdate(id, companyID string) (*entity.StockTransfer, error) {
	return r.get(id, companyID, true)
}

func (r *StockTransferRepo) get(id, companyID string, forUpdate bool) (*entity.StockTransfer, error) {
	query := `
		SELECT id, company_id, reference, type, status, contact_id,
		       source_location_id, destination_location_id,
		       scheduled_date, effective_date, created_at, updated_at
		FROM stock_transfers
		WHERE id = $1 AND company_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var t entity.StockTransfer
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(
		&t.ID, &t.CompanyID, &t.Reference, &t.Type, &t.Status, &t.ContactID,
		&t.SourceLocationID, &t.DestinationLocationID,
		&t.ScheduledDate, &t.EffectiveDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transfer: %w", err)
	}
	moves, err := r.loadMoves(t.ID)
	if err != nil {
		return nil, err
	}
	t.Moves = moves
	return &t, nil
}

func (r *StockTransferRepo) loadMoves(transferID string) ([]entity.StockMove, error) {
	query := `
		SELECT id, transfer_id, product_id, quantity,
		       source_location_id, destination_location_id,
		       status, created_at, updated_at
		FROM stock_moves
		WHERE transfer_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("load stock moves: %w", err)
	}
	defer rows.Close()

	var moves []entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(
			&m.ID, &m.TransferID, &m.ProductID, &m.Quantity,
			&m.SourceLocationID, &m.DestinationLocationID,
			&m.Status, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// MarkValidated fija status=DONE y effective_date en el traslado y propaga el
// estado a todas sus líneas.
func (r *StockTransferRepo) MarkValidated(id string, effectiveDate time.Time) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		UPDATE stock_transfers
		SET status = $2, effective_date = $3, updated_at = now()
		WHERE id = $1`, id, entity.TransferStatusDone, effectiveDate)
	if err != nil {
		return fmt.Errorf("mark transfer validated: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		UPDATE stock_moves
		SET status = $2, updated_at = now()
		WHERE transfer_id = $1`, id, entity.TransferStatusDone)
	if err != nil {
		return fmt.Errorf("mark moves validated: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de tablero del traslado y sus líneas.
func (r *StockTransferRepo) UpdateStatus(id, status string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		UPDATE stock_transfers
		SET status = $2, updated_at = now()
		WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		UPDATE stock_moves
		SET status = $2, updated_at = now()
		WHERE transfer_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update moves status: %w", err)
	}
	return nil
}

// Delete elimina el traslado y sus líneas.
func (r *StockTransferRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_moves WHERE transfer_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock moves: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_transfers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock transfer: %w", err)
	}
	return nil
}

// ListByCompany lista traslados de la empresa, más recientes primero.
// El filtro tipado se traduce a predicados WHERE.
func (r *StockTransferRepo) ListByCompany(companyID string, filter repository.TransferFilter, limit, offset int) ([]*entity.StockTransfer, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, company_id, reference, type, status, contact_id,
		       source_location_id, destination_location_id,
		       scheduled_date, effective_date, created_at, updated_at
		FROM stock_transfers
		WHERE company_id = $1`)
	args := []any{companyID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		sb.WriteString(" AND type = $" + strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		sb.WriteString(" AND status = $" + strconv.Itoa(len(args)))
	}

	args = append(args, limit)
	sb.WriteString(" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, offset)
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Reference, &t.Type, &t.Status, &t.ContactID,
			&t.SourceLocationID, &t.DestinationLocationID,
			&t.ScheduledDate, &t.EffectiveDate, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock transfer: %w", err)
		}
		transfers = append(transfers, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range transfers {
		moves, err := r.loadMoves(t.ID)
		if err != nil {
			return nil, err
		}
		t.Moves = moves
	}
	return transfers, nil
}
