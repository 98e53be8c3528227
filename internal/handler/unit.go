package handler

import (
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
	"github.com/labstack/echo/v4"
)

type UnitHandler struct {
	Handler
	units *service.UnitService
}

func NewUnitHandler(s *server.Server, units *service.UnitService) *UnitHandler {
	return &UnitHandler{
		Handler: NewHandler(s),
		units:   units,
	}
}

func (h *UnitHandler) List(c echo.Context, _ *EmptyRequest) ([]model.Unit, error) {
	return h.units.ListUnits(c.Request().Context())
}

func (h *UnitHandler) Get(c echo.Context, req *ResourceRequest) (*model.Unit, error) {
	return h.units.GetUnit(c.Request().Context(), req.ID)
}

func (h *UnitHandler) Create(c echo.Context, req *CreateUnitRequest) (*model.Unit, error) {
	return h.units.CreateUnit(c.Request().Context(), &req.UnitInput)
}

func (h *UnitHandler) Update(c echo.Context, req *UpdateUnitRequest) (*model.Unit, error) {
	return h.units.UpdateUnit(c.Request().Context(), req.ID, &req.UnitInput)
}

func (h *UnitHandler) Delete(c echo.Context, req *ResourceRequest) error {
	return h.units.DeleteUnit(c.Request().Context(), req.ID)
}
