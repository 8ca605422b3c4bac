package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación del libro de stock sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene la fila (empresa, producto, ubicación). Si no existe devuelve
// una fila en cero: las filas del libro se crean perezosamente al primer
// movimiento y nunca se borran.
func (r *StockLevelRepo) Get(companyID, productID, locationID string) (*entity.StockLevel, error) {
	return r.get(companyID, productID, locationID, false)
}

// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE) para
// evitar condiciones de carrera entre validaciones concurrentes.
func (r *StockLevelRepo) GetForUpdate(companyID, productID, locationID string) (*entity.StockLevel, error) {
	return r.get(companyID, productID, locationID, true)
}

func (r *StockLevelRepo) get(companyID, productID, locationID string, forUpdate bool) (*entity.StockLevel, error) {
	query := `
		SELECT company_id, product_id, location_id, quantity, updated_at
		FROM stock_levels
		WHERE company_id = $1 AND product_id = $2 AND location_id = $3`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var l entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, companyID, productID, locationID).Scan(
		&l.CompanyID, &l.ProductID, &l.LocationID, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{CompanyID: companyID, ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}

// Upsert inserta o actualiza la cantidad (por empresa, producto y ubicación).
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (company_id, product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (company_id, product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		level.CompanyID, level.ProductID, level.LocationID, level.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// CurrentStock lista las filas con cantidad distinta de cero, ordenadas por
// nombre de producto. El filtro tipado se traduce a predicados WHERE.
func (r *StockLevelRepo) CurrentStock(companyID string, filter repository.StockFilter, limit, offset int) ([]repository.StockLine, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT s.product_id, p.name, p.sku, s.location_id, l.name, s.quantity
		FROM stock_levels s
		JOIN products p  ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		WHERE s.company_id = $1 AND s.quantity <> 0`)
	args := []any{companyID}

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		sb.WriteString(" AND s.product_id = $" + strconv.Itoa(len(args)))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		sb.WriteString(" AND s.location_id = $" + strconv.Itoa(len(args)))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		sb.WriteString(" AND l.warehouse_id = $" + strconv.Itoa(len(args)))
	}

	args = append(args, limit)
	sb.WriteString(" ORDER BY p.name LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, offset)
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("current stock: %w", err)
	}
	defer rows.Close()

	var lines []repository.StockLine
	for rows.Next() {
		var line repository.StockLine
		if err := rows.Scan(
			&line.ProductID, &line.ProductName, &line.SKU,
			&line.LocationID, &line.LocationName, &line.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// CountLowStock cuenta productos con min_stock > 0 cuyo stock sumado en
// todas las ubicaciones queda en o por debajo del mínimo (<= inclusivo).
// La regla del HAVING es la misma que entity.IsLowStock.
func (r *StockLevelRepo) CountLowStock(companyID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT p.id
			FROM products p
			LEFT JOIN stock_levels s ON s.product_id = p.id AND s.company_id = p.company_id
			WHERE p.company_id = $1 AND p.min_stock > 0
			GROUP BY p.id, p.min_stock
			HAVING COALESCE(SUM(s.quantity), 0) <= p.min_stock
		) low`
	var count int
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}
