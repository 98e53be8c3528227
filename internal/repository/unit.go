package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUnits stores inventory units. unit_no is unique
// (constraint unique_units_unitno).
type PostgresUnits struct {
	pool *pgxpool.Pool
}

func NewPostgresUnits(pool *pgxpool.Pool) *PostgresUnits {
	return &PostgresUnits{pool: pool}
}

const unitSelect = `
SELECT id, unit_no, price, room_type, handle_by, remarks, status, created_at, updated_at
FROM units`

func scanUnit(row pgx.CollectableRow) (model.Unit, error) {
	var u model.Unit
	err := row.Scan(&u.ID, &u.UnitNo, &u.Price, &u.RoomType, &u.HandleBy, &u.Remarks, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *PostgresUnits) Find(ctx context.Context) ([]model.Unit, error) {
	rows, err := r.pool.Query(ctx, unitSelect+"\nORDER BY unit_no ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}

	units, err := pgx.CollectRows(rows, scanUnit)
	if err != nil {
		return nil, fmt.Errorf("failed to collect units: %w", err)
	}
	return units, nil
}

func (r *PostgresUnits) FindByID(ctx context.Context, id string) (*model.Unit, error) {
	rows, err := r.pool.Query(ctx, unitSelect+"\nWHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit %s: %w", id, err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, scanUnit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect unit %s: %w", id, err)
	}
	return &u, nil
}

func (r *PostgresUnits) Create(ctx context.Context, u *model.Unit) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO units (id, unit_no, price, room_type, handle_by, remarks, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.UnitNo, u.Price, u.RoomType, u.HandleBy, u.Remarks, string(u.Status), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert unit: %w", err)
	}
	return nil
}

func (r *PostgresUnits) Update(ctx context.Context, u *model.Unit) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE units SET
			unit_no = $2, price = $3, room_type = $4, handle_by = $5,
			remarks = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		u.ID, u.UnitNo, u.Price, u.RoomType, u.HandleBy, u.Remarks, string(u.Status), u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update unit %s: %w", u.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresUnits) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresUnits) DeletePolicy() model.DeletePolicy {
	return model.DeleteHard
}
