// Package repository handles all interactions with the storage backends.
//
// Each entity has one interface; the concrete engine (Postgres, Mongo or the
// fallback store) is picked once in NewRepositories and the services never
// branch on it.
package repository

import (
	"context"

	"github.com/deppfellow/estate-listings/internal/fallback"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/server"
)

// PropertyRepository persists properties. FindByID ignores availability;
// callers decide whether withdrawn listings are visible.
type PropertyRepository interface {
	Find(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error)
	FindByID(ctx context.Context, id string) (*model.Property, error)
	Create(ctx context.Context, p *model.Property) error
	Update(ctx context.Context, p *model.Property) error
	Delete(ctx context.Context, id string) error
	DeletePolicy() model.DeletePolicy
}

// AgentRepository persists agents. Find returns active agents only, ordered
// by name; FindByID returns inactive agents too.
type AgentRepository interface {
	Find(ctx context.Context) ([]model.Agent, error)
	FindByID(ctx context.Context, id string) (*model.Agent, error)
	Create(ctx context.Context, a *model.Agent) error
	Update(ctx context.Context, a *model.Agent) error
	Delete(ctx context.Context, id string) error
	DeletePolicy() model.DeletePolicy
}

// UnitRepository persists inventory units, ordered by unit number.
type UnitRepository interface {
	Find(ctx context.Context) ([]model.Unit, error)
	FindByID(ctx context.Context, id string) (*model.Unit, error)
	Create(ctx context.Context, u *model.Unit) error
	Update(ctx context.Context, u *model.Unit) error
	Delete(ctx context.Context, id string) error
	DeletePolicy() model.DeletePolicy
}

// ContactRepository stores contact inquiries. There is no update path.
type ContactRepository interface {
	Create(ctx context.Context, inquiry *model.ContactInquiry) error
	Find(ctx context.Context) ([]model.ContactInquiry, error)
}

// DisplayRepository reads the site display configuration.
type DisplayRepository interface {
	CompanyInfo(ctx context.Context) (*model.CompanyInfo, error)
	HeroSlides(ctx context.Context) ([]model.HeroSlide, error)
}

var (
	_ PropertyRepository = (*fallback.PropertyView)(nil)
	_ ContactRepository  = (*fallback.ContactView)(nil)
)

// Repositories is a container for all repository instances.
//
// A nil field means the backend for that entity is not configured; services
// turn that into a 503. Contacts always has a value because the fallback
// store can take inquiries.
type Repositories struct {
	Properties PropertyRepository
	Agents     AgentRepository
	Units      UnitRepository
	Contacts   ContactRepository
	Display    DisplayRepository
}

// NewRepositories picks a backend per entity from what the server connected to.
//
//   - properties, agents, units: Postgres
//   - contacts, display content: Mongo, else Postgres
//   - contacts with neither: the fallback store
func NewRepositories(s *server.Server) *Repositories {
	repos := &Repositories{}

	if s.DB != nil {
		pool := s.DB.Pool
		repos.Properties = NewPostgresProperties(pool)
		repos.Agents = NewPostgresAgents(pool)
		repos.Units = NewPostgresUnits(pool)
		repos.Contacts = NewPostgresContacts(pool)
		repos.Display = NewPostgresDisplay(pool)
	}

	if s.Mongo != nil {
		repos.Contacts = NewMongoContacts(s.Mongo)
		repos.Display = NewMongoDisplay(s.Mongo)
	}

	if repos.Contacts == nil {
		repos.Contacts = s.Fallback.Contacts()
	}

	return repos
}
