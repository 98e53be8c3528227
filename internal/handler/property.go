package handler

import (
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
	"github.com/labstack/echo/v4"
)

// PropertyHandler serves the public listing reads and the property writes.
type PropertyHandler struct {
	Handler
	listings *service.ListingService
}

func NewPropertyHandler(s *server.Server, listings *service.ListingService) *PropertyHandler {
	return &PropertyHandler{
		Handler:  NewHandler(s),
		listings: listings,
	}
}

func (h *PropertyHandler) List(c echo.Context, req *ListPropertiesRequest) ([]model.Property, error) {
	return h.listings.ListProperties(c.Request().Context(), req.Filter())
}

func (h *PropertyHandler) Featured(c echo.Context, _ *EmptyRequest) ([]model.Property, error) {
	return h.listings.FeaturedProperties(c.Request().Context())
}

func (h *PropertyHandler) Search(c echo.Context, req *SearchPropertiesRequest) ([]model.Property, error) {
	return h.listings.SearchProperties(c.Request().Context(), req.Query)
}

func (h *PropertyHandler) Get(c echo.Context, req *ResourceRequest) (*model.Property, error) {
	return h.listings.GetProperty(c.Request().Context(), req.ID)
}

// GetForManagement bypasses the availability check.
func (h *PropertyHandler) GetForManagement(c echo.Context, req *ResourceRequest) (*model.Property, error) {
	return h.listings.GetPropertyForManagement(c.Request().Context(), req.ID)
}

func (h *PropertyHandler) Create(c echo.Context, req *CreatePropertyRequest) (*model.Property, error) {
	return h.listings.CreateProperty(c.Request().Context(), &req.PropertyInput)
}

func (h *PropertyHandler) Update(c echo.Context, req *UpdatePropertyRequest) (*model.Property, error) {
	return h.listings.UpdateProperty(c.Request().Context(), req.ID, &req.PropertyInput)
}

func (h *PropertyHandler) Delete(c echo.Context, req *ResourceRequest) error {
	return h.listings.DeleteProperty(c.Request().Context(), req.ID)
}
