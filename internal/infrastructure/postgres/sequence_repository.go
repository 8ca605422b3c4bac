package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador atómico de referencias por (empresa, tipo) sobre
// PostgreSQL. Usar siempre dentro de la transacción que inserta el traslado.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente valor del contador (empieza en 1).
// El UPSERT es atómico: dos transacciones concurrentes serializan sobre la
// fila del contador y reciben valores distintos.
func (r *SequenceRepo) Next(companyID, transferType string) (int64, error) {
	query := `
		INSERT INTO transfer_sequences (company_id, transfer_type, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, transfer_type)
		DO UPDATE SET value = transfer_sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, companyID, transferType).Scan(&value); err != nil {
		return 0, fmt.Errorf("next transfer sequence: %w", err)
	}
	return value, nil
}
