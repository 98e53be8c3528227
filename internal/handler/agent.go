package handler

import (
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
	"github.com/labstack/echo/v4"
)

// AgentHandler serves the agent directory.
type AgentHandler struct {
	Handler
	agents *service.AgentService
}

func NewAgentHandler(s *server.Server, agents *service.AgentService) *AgentHandler {
	return &AgentHandler{
		Handler: NewHandler(s),
		agents:  agents,
	}
}

func (h *AgentHandler) List(c echo.Context, _ *EmptyRequest) ([]model.AgentListItem, error) {
	return h.agents.ListAgents(c.Request().Context())
}

func (h *AgentHandler) Get(c echo.Context, req *ResourceRequest) (*model.Agent, error) {
	return h.agents.GetAgent(c.Request().Context(), req.ID)
}

func (h *AgentHandler) Create(c echo.Context, req *CreateAgentRequest) (*model.Agent, error) {
	return h.agents.CreateAgent(c.Request().Context(), &req.AgentInput)
}

func (h *AgentHandler) Update(c echo.Context, req *UpdateAgentRequest) (*model.Agent, error) {
	return h.agents.UpdateAgent(c.Request().Context(), req.ID, &req.AgentInput)
}

// Delete deactivates the agent. Their properties keep the reference.
func (h *AgentHandler) Delete(c echo.Context, req *ResourceRequest) error {
	return h.agents.DeleteAgent(c.Request().Context(), req.ID)
}
