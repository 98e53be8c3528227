package handler

import (
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
	"github.com/labstack/echo/v4"
)

// ContactHandler takes contact form submissions and lists them for staff.
type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

func (h *ContactHandler) Submit(c echo.Context, req *SubmitContactRequest) (*model.ContactReceipt, error) {
	return h.contacts.SubmitInquiry(c.Request().Context(), &req.ContactInput)
}

func (h *ContactHandler) List(c echo.Context, _ *EmptyRequest) ([]model.ContactInquiry, error) {
	return h.contacts.ListInquiries(c.Request().Context())
}
