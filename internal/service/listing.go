package service

import (
	"context"
	"strconv"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/fallback"
	"github.com/deppfellow/estate-listings/internal/lib/cache"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/repository"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/rs/zerolog"
)

// ListingService answers property queries and writes.
//
// Public reads never return withdrawn listings. Search is the one read that
// survives a missing or failing backend, through the fallback store.
type ListingService struct {
	properties repository.PropertyRepository
	agents     repository.AgentRepository
	fallback   *fallback.Store
	cache      *cache.ListingCache
	logger     *zerolog.Logger
	clock      clock
}

func NewListingService(
	properties repository.PropertyRepository,
	agents repository.AgentRepository,
	fallbackStore *fallback.Store,
	listingCache *cache.ListingCache,
	logger *zerolog.Logger,
) *ListingService {
	return &ListingService{
		properties: properties,
		agents:     agents,
		fallback:   fallbackStore,
		cache:      listingCache,
		logger:     logger,
	}
}

// ListProperties returns available properties matching filter, newest first.
// Inverted price bounds yield an empty list without a storage call, and a
// featured-only query is capped at FeaturedLimit.
func (s *ListingService) ListProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	if s.properties == nil {
		return nil, unavailable("Listing")
	}

	filter.IncludeUnavailable = false
	if filter.InvertedBounds() {
		return []model.Property{}, nil
	}
	if filter.FeaturedOnly() && (filter.Limit <= 0 || filter.Limit > model.FeaturedLimit) {
		filter.Limit = model.FeaturedLimit
	}

	var props []model.Property
	key, hit := s.cache.Lookup(ctx, "properties", filterParams(filter), &props)
	if hit {
		return props, nil
	}

	props, err := s.properties.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	props = publicList(props)
	s.cache.Store(ctx, key, props)
	return props, nil
}

// FeaturedProperties returns up to FeaturedLimit featured, available listings.
func (s *ListingService) FeaturedProperties(ctx context.Context) ([]model.Property, error) {
	featured := true
	return s.ListProperties(ctx, model.PropertyFilter{Featured: &featured})
}

// GetProperty is the public read. Withdrawn listings are reported as missing.
func (s *ListingService) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	p, err := s.findProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAvailable {
		return nil, notFound("Property")
	}
	return p, nil
}

// GetPropertyForManagement reads a property regardless of availability.
func (s *ListingService) GetPropertyForManagement(ctx context.Context, id string) (*model.Property, error) {
	return s.findProperty(ctx, id)
}

func (s *ListingService) findProperty(ctx context.Context, id string) (*model.Property, error) {
	if s.properties == nil {
		return nil, unavailable("Listing")
	}

	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Property")
	}
	p.EnsureLists()
	return p, nil
}

// SearchProperties does a free-text match over title, description, location,
// address and property type. A blank term returns [] without touching
// storage. When the backend is missing or fails, the fallback store answers.
func (s *ListingService) SearchProperties(ctx context.Context, term string) ([]model.Property, error) {
	normalized := model.NormalizeSearchTerm(term)
	if normalized == "" {
		return []model.Property{}, nil
	}

	candidates := s.searchCandidates(ctx)

	out := make([]model.Property, 0)
	for _, p := range candidates {
		if p.IsAvailable && p.MatchesSearch(normalized) {
			out = append(out, p)
		}
	}
	return publicList(out), nil
}

func (s *ListingService) searchCandidates(ctx context.Context) []model.Property {
	if s.properties != nil {
		props, err := s.properties.Find(ctx, model.PropertyFilter{})
		if err == nil {
			return props
		}
		s.logger.Warn().Err(err).Msg("property search failed, using fallback store")
	}

	if s.fallback == nil {
		return nil
	}
	return s.fallback.ListAvailableProperties()
}

// CreateProperty validates input, checks the agent is active, and stores the
// property with defaults applied.
func (s *ListingService) CreateProperty(ctx context.Context, in *model.PropertyInput) (*model.Property, error) {
	if s.properties == nil || s.agents == nil {
		return nil, unavailable("Listing")
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	agent, err := s.activeAgent(ctx, in.AgentID)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	p := &model.Property{ID: model.NewID(), CreatedAt: now, UpdatedAt: now}
	in.Apply(p)

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}

	p.Agent = agent.Summary()
	s.cache.Invalidate(ctx)

	s.logger.Info().Str("property_id", p.ID).Str("agent_id", p.AgentID).Msg("property created")
	return p, nil
}

// UpdateProperty replaces a property. Existence is checked before the write
// so a missing id is a 404 rather than a failed update.
func (s *ListingService) UpdateProperty(ctx context.Context, id string, in *model.PropertyInput) (*model.Property, error) {
	if s.properties == nil || s.agents == nil {
		return nil, unavailable("Listing")
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Property")
	}

	agent, err := s.activeAgent(ctx, in.AgentID)
	if err != nil {
		return nil, err
	}

	in.Apply(p)
	p.UpdatedAt = s.clock.now()

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, mapNotFound(err, "Property")
	}

	p.Agent = agent.Summary()
	s.cache.Invalidate(ctx)
	return p, nil
}

// DeleteProperty removes the property for good.
func (s *ListingService) DeleteProperty(ctx context.Context, id string) error {
	if s.properties == nil {
		return unavailable("Listing")
	}

	if _, err := s.properties.FindByID(ctx, id); err != nil {
		return mapNotFound(err, "Property")
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		return mapNotFound(err, "Property")
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("property_id", id).Str("policy", s.properties.DeletePolicy().String()).Msg("property deleted")
	return nil
}

// activeAgent resolves the owning agent for a write. Unknown or inactive
// agents are a 400 on agentId.
func (s *ListingService) activeAgent(ctx context.Context, id string) (*model.Agent, error) {
	agent, err := s.agents.FindByID(ctx, id)
	if err == nil && agent.IsActive {
		return agent, nil
	}
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	code := "AGENT_NOT_FOUND"
	return nil, errs.NewBadRequestError("The referenced Agent does not exist", true, &code,
		[]errs.FieldError{{Field: "agentId", Error: "must reference an active agent"}}, nil)
}

// publicList shapes properties for list responses: minimal agent projection,
// non-nil lists.
func publicList(props []model.Property) []model.Property {
	if props == nil {
		return []model.Property{}
	}
	for i := range props {
		props[i].EnsureLists()
		props[i].Agent = props[i].Agent.Minimal()
	}
	return props
}

// filterParams is the cache identity of a filter.
func filterParams(f model.PropertyFilter) map[string]string {
	params := map[string]string{
		"limit":  strconv.Itoa(f.Limit),
		"offset": strconv.Itoa(f.Offset),
	}
	if f.PropertyType != "" {
		params["propertyType"] = f.PropertyType
	}
	if f.PriceType != "" {
		params["priceType"] = string(f.PriceType)
	}
	if f.MinPrice != nil {
		params["minPrice"] = strconv.FormatFloat(*f.MinPrice, 'f', -1, 64)
	}
	if f.MaxPrice != nil {
		params["maxPrice"] = strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64)
	}
	if f.Bedrooms != nil {
		params["bedrooms"] = strconv.Itoa(*f.Bedrooms)
	}
	if f.Location != "" {
		params["location"] = f.Location
	}
	if f.Featured != nil {
		params["featured"] = strconv.FormatBool(*f.Featured)
	}
	return params
}
