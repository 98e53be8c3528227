package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDisplay reads company info and hero slides from Postgres.
type PostgresDisplay struct {
	pool *pgxpool.Pool
}

func NewPostgresDisplay(pool *pgxpool.Pool) *PostgresDisplay {
	return &PostgresDisplay{pool: pool}
}

func (r *PostgresDisplay) CompanyInfo(ctx context.Context) (*model.CompanyInfo, error) {
	var info model.CompanyInfo
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, tagline, description, email, phone, address,
			telegram, facebook, working_days, logo_url
		FROM company_info
		ORDER BY id
		LIMIT 1`,
	).Scan(
		&info.ID, &info.Name, &info.Tagline, &info.Description, &info.Email, &info.Phone, &info.Address,
		&info.Telegram, &info.Facebook, &info.WorkingDays, &info.LogoURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query company info: %w", err)
	}
	return &info, nil
}

func (r *PostgresDisplay) HeroSlides(ctx context.Context) ([]model.HeroSlide, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, subtitle, image_url, link_url, position, is_active
		FROM hero_slides
		WHERE is_active = TRUE
		ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hero slides: %w", err)
	}

	slides, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.HeroSlide])
	if err != nil {
		return nil, fmt.Errorf("failed to collect hero slides: %w", err)
	}
	return slides, nil
}
