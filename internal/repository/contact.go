package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresContacts stores contact inquiries when no document store is configured.
type PostgresContacts struct {
	pool *pgxpool.Pool
}

func NewPostgresContacts(pool *pgxpool.Pool) *PostgresContacts {
	return &PostgresContacts{pool: pool}
}

func (r *PostgresContacts) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_inquiries (id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message, inquiry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact inquiry: %w", err)
	}
	return nil
}

func (r *PostgresContacts) Find(ctx context.Context) ([]model.ContactInquiry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, message, created_at
		FROM contact_inquiries
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact inquiries: %w", err)
	}

	inquiries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ContactInquiry, error) {
		var c model.ContactInquiry
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect contact inquiries: %w", err)
	}
	return inquiries, nil
}
