package handler

import (
	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/lib/email"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
	"github.com/labstack/echo/v4"
)

// DisplayHandler serves site content and staff-facing email previews.
type DisplayHandler struct {
	Handler
	display *service.DisplayService
}

func NewDisplayHandler(s *server.Server, display *service.DisplayService) *DisplayHandler {
	return &DisplayHandler{
		Handler: NewHandler(s),
		display: display,
	}
}

func (h *DisplayHandler) CompanyInfo(c echo.Context, _ *EmptyRequest) (*model.CompanyInfo, error) {
	return h.display.CompanyInfo(c.Request().Context())
}

func (h *DisplayHandler) HeroSlides(c echo.Context, _ *EmptyRequest) ([]model.HeroSlide, error) {
	return h.display.HeroSlides(c.Request().Context())
}

// EmailPreview renders a notification template with sample data.
func (h *DisplayHandler) EmailPreview(c echo.Context, req *EmailPreviewRequest) ([]byte, error) {
	name := email.Template(req.Template)
	if _, ok := email.PreviewData[name]; !ok {
		code := "TEMPLATE_NOT_FOUND"
		return nil, errs.NewNotFoundError("Email template not found", true, &code)
	}

	body, err := email.Preview(name)
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}
