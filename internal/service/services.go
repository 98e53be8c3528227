// Package service contains the business logic.
//
// It sits between the handler and repository layers: it validates input,
// enforces visibility rules, and calls repositories. Services return
// *errs.HTTPError for expected failures (400, 404, 503); anything else is an
// internal failure left to the global error handler.
package service

import (
	"time"

	"github.com/deppfellow/estate-listings/internal/lib/cache"
	"github.com/deppfellow/estate-listings/internal/lib/job"
	"github.com/deppfellow/estate-listings/internal/repository"
	"github.com/deppfellow/estate-listings/internal/server"
)

type Services struct {
	Auth     *AuthService
	Listings *ListingService
	Agents   *AgentService
	Units    *UnitService
	Contacts *ContactService
	Display  *DisplayService
	Job      *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	listingCache := cache.New(s.Redis, s.Config.Cache.ListingTTL, s.Logger)

	var notifier ContactNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Auth:     NewAuthService(s),
		Listings: NewListingService(repos.Properties, repos.Agents, s.Fallback, listingCache, s.Logger),
		Agents:   NewAgentService(repos.Agents, listingCache, s.Logger),
		Units:    NewUnitService(repos.Units),
		Contacts: NewContactService(repos.Contacts, s.Fallback, notifier, s.Logger),
		Display:  NewDisplayService(repos.Display),
		Job:      s.Job,
	}, nil
}

// clock is swapped in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
