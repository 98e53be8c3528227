package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProperties stores properties and joins their agent on read.
type PostgresProperties struct {
	pool *pgxpool.Pool
}

func NewPostgresProperties(pool *pgxpool.Pool) *PostgresProperties {
	return &PostgresProperties{pool: pool}
}

const propertySelect = `
SELECT
	p.id, p.title, p.description, p.price, p.price_type, p.property_type,
	p.bedrooms, p.bathrooms, p.area, p.location, p.address,
	p.latitude, p.longitude, p.images, p.features,
	p.is_featured, p.is_available, p.availability_note, p.available_from,
	p.commission_rate, p.special_conditions, p.agent_id,
	p.created_at, p.updated_at,
	a.id, a.name, a.phone, a.avatar, a.email, a.bio,
	a.specialties, a.languages, a.experience_years, a.rating, a.is_active
FROM properties p
JOIN agents a ON a.id = p.agent_id`

// likeEscaper escapes LIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildPropertyQuery turns a filter into SQL. Every constraint is optional
// except availability, which only management reads lift.
func buildPropertyQuery(filter model.PropertyFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.IncludeUnavailable {
		conds = append(conds, "p.is_available = TRUE")
	}
	if filter.PropertyType != "" {
		conds = append(conds, "p.property_type = "+arg(filter.PropertyType))
	}
	if filter.PriceType != "" {
		conds = append(conds, "p.price_type = "+arg(string(filter.PriceType)))
	}
	if filter.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*filter.MaxPrice))
	}
	if filter.Bedrooms != nil {
		conds = append(conds, "p.bedrooms = "+arg(*filter.Bedrooms))
	}
	if filter.Location != "" {
		conds = append(conds, "p.location ILIKE "+arg("%"+likeEscaper.Replace(filter.Location)+"%")+` ESCAPE '\'`)
	}
	if filter.Featured != nil {
		conds = append(conds, "p.is_featured = "+arg(*filter.Featured))
	}

	var sb strings.Builder
	sb.WriteString(propertySelect)
	if len(conds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString("\nORDER BY p.created_at DESC, p.id DESC")
	if filter.Limit > 0 {
		sb.WriteString("\nLIMIT " + arg(filter.Limit))
	}
	if filter.Offset > 0 {
		sb.WriteString("\nOFFSET " + arg(filter.Offset))
	}

	return sb.String(), args
}

func scanProperty(row pgx.CollectableRow) (model.Property, error) {
	var (
		p        model.Property
		agent    model.AgentSummary
		lat, lng *float64
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.PriceType, &p.PropertyType,
		&p.Bedrooms, &p.Bathrooms, &p.Area, &p.Location, &p.Address,
		&lat, &lng, &p.Images, &p.Features,
		&p.IsFeatured, &p.IsAvailable, &p.AvailabilityNote, &p.AvailableFrom,
		&p.CommissionRate, &p.SpecialConditions, &p.AgentID,
		&p.CreatedAt, &p.UpdatedAt,
		&agent.ID, &agent.Name, &agent.Phone, &agent.Avatar, &agent.Email, &agent.Bio,
		&agent.Specialties, &agent.Languages, &agent.ExperienceYears, &agent.Rating, &agent.IsActive,
	)
	if err != nil {
		return p, err
	}

	if lat != nil && lng != nil {
		p.Coordinates = &model.GeoPoint{Lat: *lat, Lng: *lng}
	}
	p.Agent = &agent
	p.EnsureLists()
	return p, nil
}

func (r *PostgresProperties) Find(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	query, args := buildPropertyQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	props, err := pgx.CollectRows(rows, scanProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to collect properties: %w", err)
	}
	return props, nil
}

func (r *PostgresProperties) FindByID(ctx context.Context, id string) (*model.Property, error) {
	rows, err := r.pool.Query(ctx, propertySelect+"\nWHERE p.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProperty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect property %s: %w", id, err)
	}
	return &p, nil
}

func coordinates(p *model.Property) (lat, lng *float64) {
	if p.Coordinates == nil {
		return nil, nil
	}
	return &p.Coordinates.Lat, &p.Coordinates.Lng
}

func (r *PostgresProperties) Create(ctx context.Context, p *model.Property) error {
	lat, lng := coordinates(p)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO properties (
			id, title, description, price, price_type, property_type,
			bedrooms, bathrooms, area, location, address, latitude, longitude,
			images, features, is_featured, is_available, availability_note,
			available_from, commission_rate, special_conditions, agent_id,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)`,
		p.ID, p.Title, p.Description, p.Price, string(p.PriceType), p.PropertyType,
		p.Bedrooms, p.Bathrooms, p.Area, p.Location, p.Address, lat, lng,
		p.Images, p.Features, p.IsFeatured, p.IsAvailable, p.AvailabilityNote,
		p.AvailableFrom, p.CommissionRate, p.SpecialConditions, p.AgentID,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

func (r *PostgresProperties) Update(ctx context.Context, p *model.Property) error {
	lat, lng := coordinates(p)

	tag, err := r.pool.Exec(ctx, `
		UPDATE properties SET
			title = $2, description = $3, price = $4, price_type = $5,
			property_type = $6, bedrooms = $7, bathrooms = $8, area = $9,
			location = $10, address = $11, latitude = $12, longitude = $13,
			images = $14, features = $15, is_featured = $16, is_available = $17,
			availability_note = $18, available_from = $19, commission_rate = $20,
			special_conditions = $21, agent_id = $22, updated_at = $23
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Price, string(p.PriceType),
		p.PropertyType, p.Bedrooms, p.Bathrooms, p.Area,
		p.Location, p.Address, lat, lng,
		p.Images, p.Features, p.IsFeatured, p.IsAvailable,
		p.AvailabilityNote, p.AvailableFrom, p.CommissionRate,
		p.SpecialConditions, p.AgentID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresProperties) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

// DeletePolicy is hard: properties are removed, not deactivated.
func (r *PostgresProperties) DeletePolicy() model.DeletePolicy {
	return model.DeleteHard
}
