package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAgents stores agents. Deletion only clears is_active because
// properties keep a foreign key to the agent.
type PostgresAgents struct {
	pool *pgxpool.Pool
}

func NewPostgresAgents(pool *pgxpool.Pool) *PostgresAgents {
	return &PostgresAgents{pool: pool}
}

const agentSelect = `
SELECT
	id, name, role, email, phone, telegram, avatar, bio,
	experience_years, rating, properties_sold, specialties, languages,
	education, certifications, achievements, location, is_active,
	created_at, updated_at
FROM agents`

func scanAgent(row pgx.CollectableRow) (model.Agent, error) {
	var a model.Agent
	err := row.Scan(
		&a.ID, &a.Name, &a.Role, &a.Email, &a.Phone, &a.Telegram, &a.Avatar, &a.Bio,
		&a.ExperienceYears, &a.Rating, &a.PropertiesSold, &a.Specialties, &a.Languages,
		&a.Education, &a.Certifications, &a.Achievements, &a.Location, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	)
	a.EnsureLists()
	return a, err
}

func (r *PostgresAgents) Find(ctx context.Context) ([]model.Agent, error) {
	rows, err := r.pool.Query(ctx, agentSelect+"\nWHERE is_active = TRUE\nORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}

	agents, err := pgx.CollectRows(rows, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to collect agents: %w", err)
	}
	return agents, nil
}

func (r *PostgresAgents) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	rows, err := r.pool.Query(ctx, agentSelect+"\nWHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent %s: %w", id, err)
	}

	a, err := pgx.CollectExactlyOneRow(rows, scanAgent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect agent %s: %w", id, err)
	}
	return &a, nil
}

func (r *PostgresAgents) Create(ctx context.Context, a *model.Agent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO agents (
			id, name, role, email, phone, telegram, avatar, bio,
			experience_years, rating, properties_sold, specialties, languages,
			education, certifications, achievements, location, is_active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)`,
		a.ID, a.Name, a.Role, a.Email, a.Phone, a.Telegram, a.Avatar, a.Bio,
		a.ExperienceYears, a.Rating, a.PropertiesSold, a.Specialties, a.Languages,
		a.Education, a.Certifications, a.Achievements, a.Location, a.IsActive,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert agent: %w", err)
	}
	return nil
}

func (r *PostgresAgents) Update(ctx context.Context, a *model.Agent) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE agents SET
			name = $2, role = $3, email = $4, phone = $5, telegram = $6,
			avatar = $7, bio = $8, experience_years = $9, rating = $10,
			properties_sold = $11, specialties = $12, languages = $13,
			education = $14, certifications = $15, achievements = $16,
			location = $17, updated_at = $18
		WHERE id = $1`,
		a.ID, a.Name, a.Role, a.Email, a.Phone, a.Telegram,
		a.Avatar, a.Bio, a.ExperienceYears, a.Rating,
		a.PropertiesSold, a.Specialties, a.Languages,
		a.Education, a.Certifications, a.Achievements,
		a.Location, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update agent %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

// Delete deactivates the agent.
func (r *PostgresAgents) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE agents SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate agent %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresAgents) DeletePolicy() model.DeletePolicy {
	return model.DeleteSoft
}
