// Package handler is the HTTP layer.
//
// Handlers receive a bound, validated request from the generic pipeline in
// base.go, call one service method and return its result. They hold no
// business rules of their own.
package handler

import (
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Property *PropertyHandler
	Agent    *AgentHandler
	Unit     *UnitHandler
	Contact  *ContactHandler
	Display  *DisplayHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Property: NewPropertyHandler(s, services.Listings),
		Agent:    NewAgentHandler(s, services.Agents),
		Unit:     NewUnitHandler(s, services.Units),
		Contact:  NewContactHandler(s, services.Contacts),
		Display:  NewDisplayHandler(s, services.Display),
	}
}
