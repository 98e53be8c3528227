package service

import (
	"context"

	"github.com/deppfellow/estate-listings/internal/lib/cache"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/repository"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/rs/zerolog"
)

// AgentService manages the agent directory. Inactive agents are invisible to
// every read and write here; only property reads still show them.
type AgentService struct {
	agents repository.AgentRepository
	cache  *cache.ListingCache
	logger *zerolog.Logger
	clock  clock
}

func NewAgentService(agents repository.AgentRepository, listingCache *cache.ListingCache, logger *zerolog.Logger) *AgentService {
	return &AgentService{agents: agents, cache: listingCache, logger: logger}
}

// ListAgents returns active agents by name.
func (s *AgentService) ListAgents(ctx context.Context) ([]model.AgentListItem, error) {
	if s.agents == nil {
		return nil, unavailable("Agent")
	}

	agents, err := s.agents.Find(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.AgentListItem, 0, len(agents))
	for _, a := range agents {
		if a.IsActive {
			items = append(items, a.ListItem())
		}
	}
	return items, nil
}

// GetAgent returns an active agent.
func (s *AgentService) GetAgent(ctx context.Context, id string) (*model.Agent, error) {
	if s.agents == nil {
		return nil, unavailable("Agent")
	}
	return s.activeAgent(ctx, id)
}

func (s *AgentService) activeAgent(ctx context.Context, id string) (*model.Agent, error) {
	a, err := s.agents.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Agent")
	}
	if !a.IsActive {
		return nil, notFound("Agent")
	}
	a.EnsureLists()
	return a, nil
}

// CreateAgent adds an active agent.
func (s *AgentService) CreateAgent(ctx context.Context, in *model.AgentInput) (*model.Agent, error) {
	if s.agents == nil {
		return nil, unavailable("Agent")
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	now := s.clock.now()
	a := &model.Agent{ID: model.NewID(), IsActive: true, CreatedAt: now, UpdatedAt: now}
	in.Apply(a)

	if err := s.agents.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Str("agent_id", a.ID).Msg("agent created")
	return a, nil
}

// UpdateAgent replaces an active agent's fields.
func (s *AgentService) UpdateAgent(ctx context.Context, id string, in *model.AgentInput) (*model.Agent, error) {
	if s.agents == nil {
		return nil, unavailable("Agent")
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	a, err := s.activeAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(a)
	a.UpdatedAt = s.clock.now()

	if err := s.agents.Update(ctx, a); err != nil {
		return nil, mapNotFound(err, "Agent")
	}

	s.cache.Invalidate(ctx)
	return a, nil
}

// DeleteAgent applies the repository's delete policy, which for agents is a
// soft delete. Properties keep pointing at the agent.
func (s *AgentService) DeleteAgent(ctx context.Context, id string) error {
	if s.agents == nil {
		return unavailable("Agent")
	}

	if _, err := s.activeAgent(ctx, id); err != nil {
		return err
	}

	if err := s.agents.Delete(ctx, id); err != nil {
		return mapNotFound(err, "Agent")
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("agent_id", id).Str("policy", s.agents.DeletePolicy().String()).Msg("agent deleted")
	return nil
}
