package router

import (
	"net/http"

	"github.com/deppfellow/estate-listings/internal/handler"
	"github.com/deppfellow/estate-listings/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerV1Routes registers the public reads, the contact form and the
// management routes. Management routes require a Clerk session.
func registerV1Routes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	registerPropertyRoutes(v1, h.Property, m)
	registerAgentRoutes(v1, h.Agent, m)
	registerUnitRoutes(v1, h.Unit, m)
	registerContactRoutes(v1, h.Contact, m)
	registerDisplayRoutes(v1, h.Display)
	registerAdminRoutes(v1, h, m)
}

func registerPropertyRoutes(v1 *echo.Group, h *handler.PropertyHandler, m *middleware.Middlewares) {
	v1.GET("/featured-properties", handler.Handle(h.Handler, h.Featured, http.StatusOK, &handler.EmptyRequest{}))

	properties := v1.Group("/properties")
	properties.GET("", handler.Handle(h.Handler, h.List, http.StatusOK, &handler.ListPropertiesRequest{}))
	properties.GET("/search", handler.Handle(h.Handler, h.Search, http.StatusOK, &handler.SearchPropertiesRequest{}))
	properties.GET("/:id", handler.Handle(h.Handler, h.Get, http.StatusOK, &handler.ResourceRequest{}))

	properties.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated, &handler.CreatePropertyRequest{}), m.Auth.RequireAuth)
	properties.PUT("/:id", handler.Handle(h.Handler, h.Update, http.StatusOK, &handler.UpdatePropertyRequest{}), m.Auth.RequireAuth)
	properties.DELETE("/:id", handler.HandleNoContent(h.Handler, h.Delete, http.StatusNoContent, &handler.ResourceRequest{}), m.Auth.RequireAuth)
}

func registerAgentRoutes(v1 *echo.Group, h *handler.AgentHandler, m *middleware.Middlewares) {
	agents := v1.Group("/agents")
	agents.GET("", handler.Handle(h.Handler, h.List, http.StatusOK, &handler.EmptyRequest{}))
	agents.GET("/:id", handler.Handle(h.Handler, h.Get, http.StatusOK, &handler.ResourceRequest{}))

	agents.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated, &handler.CreateAgentRequest{}), m.Auth.RequireAuth)
	agents.PUT("/:id", handler.Handle(h.Handler, h.Update, http.StatusOK, &handler.UpdateAgentRequest{}), m.Auth.RequireAuth)
	agents.DELETE("/:id", handler.HandleNoContent(h.Handler, h.Delete, http.StatusNoContent, &handler.ResourceRequest{}), m.Auth.RequireAuth)
}

func registerUnitRoutes(v1 *echo.Group, h *handler.UnitHandler, m *middleware.Middlewares) {
	units := v1.Group("/units", m.Auth.RequireAuth)
	units.GET("", handler.Handle(h.Handler, h.List, http.StatusOK, &handler.EmptyRequest{}))
	units.GET("/:id", handler.Handle(h.Handler, h.Get, http.StatusOK, &handler.ResourceRequest{}))
	units.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated, &handler.CreateUnitRequest{}))
	units.PUT("/:id", handler.Handle(h.Handler, h.Update, http.StatusOK, &handler.UpdateUnitRequest{}))
	units.DELETE("/:id", handler.HandleNoContent(h.Handler, h.Delete, http.StatusNoContent, &handler.ResourceRequest{}))
}

func registerContactRoutes(v1 *echo.Group, h *handler.ContactHandler, m *middleware.Middlewares) {
	v1.POST("/contact", handler.Handle(h.Handler, h.Submit, http.StatusCreated, &handler.SubmitContactRequest{}), m.RateLimit.LimitSubmissions())
}

func registerDisplayRoutes(v1 *echo.Group, h *handler.DisplayHandler) {
	v1.GET("/company-info", handler.Handle(h.Handler, h.CompanyInfo, http.StatusOK, &handler.EmptyRequest{}))
	v1.GET("/hero-slides", handler.Handle(h.Handler, h.HeroSlides, http.StatusOK, &handler.EmptyRequest{}))
}

func registerAdminRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	admin := v1.Group("/admin", m.Auth.RequireAuth)
	admin.GET("/properties/:id", handler.Handle(h.Property.Handler, h.Property.GetForManagement, http.StatusOK, &handler.ResourceRequest{}))
	admin.GET("/contact-inquiries", handler.Handle(h.Contact.Handler, h.Contact.List, http.StatusOK, &handler.EmptyRequest{}))
	admin.GET("/emails/:template/preview", handler.HandleFile(h.Display.Handler, h.Display.EmailPreview, http.StatusOK, &handler.EmailPreviewRequest{}, "", "text/html; charset=utf-8"))
}
