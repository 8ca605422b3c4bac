package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) Create(l *entity.Location) error {
	query := `
		INSERT INTO locations (
			id, company_id, name, short_code, type, parent_id, warehouse_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.CompanyID, l.Name, l.ShortCode, l.Type, l.ParentID, l.WarehouseID,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, company_id, name, short_code, type, parent_id, warehouse_id,
		       created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.ShortCode, &l.Type, &l.ParentID, &l.WarehouseID,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

func (r *LocationRepo) Update(l *entity.Location) error {
	query := `
		UPDATE locations
		SET name = $2, short_code = $3, type = $4, parent_id = $5,
		    warehouse_id = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Name, l.ShortCode, l.Type, l.ParentID, l.WarehouseID,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

func (r *LocationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, company_id, name, short_code, type, parent_id, warehouse_id,
		       created_at, updated_at
		FROM locations
		WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	return scanLocations(rows)
}

func (r *LocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	query := `
		SELECT id, company_id, name, short_code, type, parent_id, warehouse_id,
		       created_at, updated_at
		FROM locations
		WHERE warehouse_id = $1
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list locations by warehouse: %w", err)
	}
	defer rows.Close()
	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]*entity.Location, error) {
	var locations []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(
			&l.ID, &l.CompanyID, &l.Name, &l.ShortCode, &l.Type, &l.ParentID, &l.WarehouseID,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}

func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
