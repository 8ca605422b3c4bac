package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func (r *ContactRepo) Create(c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, company_id, name, type, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CompanyID, c.Name, c.Type, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	query := `
		SELECT id, company_id, name, type, email, phone, created_at, updated_at
		FROM contacts WHERE id = $1`
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Type, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepo) Update(c *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, type = $3, email = $4, phone = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.Type, c.Email, c.Phone)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// ListByCompany lista contactos; contactType vacío = todos.
func (r *ContactRepo) ListByCompany(companyID, contactType string, limit, offset int) ([]*entity.Contact, error) {
	var rows pgx.Rows
	var err error
	if contactType != "" {
		rows, err = r.q.Query(context.Background(), `
			SELECT id, company_id, name, type, email, phone, created_at, updated_at
			FROM contacts
			WHERE company_id = $1 AND type = $2
			ORDER BY name LIMIT $3 OFFSET $4`, companyID, contactType, limit, offset)
	} else {
		rows, err = r.q.Query(context.Background(), `
			SELECT id, company_id, name, type, email, phone, created_at, updated_at
			FROM contacts
			WHERE company_id = $1
			ORDER BY name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Type, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
