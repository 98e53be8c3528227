package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/estate-listings/internal/config"
	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/fallback"
	"github.com/deppfellow/estate-listings/internal/handler"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/repository"
	"github.com/deppfellow/estate-listings/internal/router"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the real router against the fallback store only: no
// database, no document store, no redis.
func newTestRouter(t *testing.T) (*echo.Echo, *fallback.Store) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.ServerConfig{Port: "0", CORSAllowedOrigins: []string{"*"}},
		Observability: config.DefaultObservabilityConfig(),
	}

	store := fallback.New(fallback.Options{
		Seed: fallback.SeedProperties(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	})

	srv := &server.Server{Config: cfg, Logger: &logger, Fallback: store}

	repos := &repository.Repositories{
		Properties: store.Properties(),
		Contacts:   store.Contacts(),
	}

	services, err := service.NewServices(srv, repos)
	require.NoError(t, err)

	return router.NewRouter(srv, handler.NewHandlers(srv, services)), store
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestListProperties(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)

	props := decode[[]model.Property](t, rec)
	require.Len(t, props, 3)
	assert.Equal(t, "seed-property-1", props[0].ID)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListPropertiesFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/properties?propertyType=villa&priceType=sale", "")
	require.Equal(t, http.StatusOK, rec.Code)
	props := decode[[]model.Property](t, rec)
	require.Len(t, props, 1)
	assert.Equal(t, "seed-property-2", props[0].ID)

	rec = do(r, http.MethodGet, "/api/v1/properties?minPrice=100&maxPrice=50", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(r, http.MethodGet, "/api/v1/properties?limit=1&offset=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	props = decode[[]model.Property](t, rec)
	require.Len(t, props, 1)
	assert.Equal(t, "seed-property-2", props[0].ID)
}

func TestListPropertiesRejectsMalformedQuery(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/properties?minPrice=abc&bedrooms=1.5&priceType=lease", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["minPrice"])
	assert.True(t, fields["bedrooms"])
	assert.True(t, fields["priceType"])
}

func TestSearchProperties(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/properties/search?q=bkk1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	props := decode[[]model.Property](t, rec)
	require.Len(t, props, 1)
	assert.Equal(t, "BKK1, Phnom Penh", props[0].Location)

	rec = do(r, http.MethodGet, "/api/v1/properties/search?q=%20%20%20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestFeaturedProperties(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/featured-properties", "")
	require.Equal(t, http.StatusOK, rec.Code)

	props := decode[[]model.Property](t, rec)
	require.Len(t, props, 2)
	for _, p := range props {
		assert.True(t, p.IsFeatured)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/properties/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROPERTY_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)
}

func TestGetWithdrawnPropertyIsHidden(t *testing.T) {
	r, store := newTestRouter(t)

	p, ok := findSeed(store, "seed-property-3")
	require.True(t, ok)
	p.IsAvailable = false
	store.UpsertProperty(p)

	rec := do(r, http.MethodGet, "/api/v1/properties/seed-property-3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func findSeed(store *fallback.Store, id string) (model.Property, bool) {
	for _, p := range store.ListAvailableProperties() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Property{}, false
}

func TestSubmitContact(t *testing.T) {
	r, store := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/contact",
		`{"name":"Dara","email":"Dara@Example.com","phone":"012 000 111","message":"Viewing on Saturday?"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	receipt := decode[model.ContactReceipt](t, rec)
	assert.True(t, receipt.OK)
	assert.NotEmpty(t, receipt.InquiryID)

	// Fields from the first request must not leak into the second.
	rec = do(r, http.MethodPost, "/api/v1/contact", `{"name":"Dara"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	assert.Contains(t, body.Message, "email")
	assert.Contains(t, body.Message, "phone")
	assert.Contains(t, body.Message, "message")

	inquiries := store.Contacts()
	stored, err := inquiries.Find(t.Context())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "dara@example.com", stored[0].Email)
}

func TestSubmitContactRateLimited(t *testing.T) {
	r, _ := newTestRouter(t)
	body := `{"name":"Dara","email":"dara@example.com","phone":"012","message":"hi"}`

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/contact", body).Code)
	}

	rec := do(r, http.MethodPost, "/api/v1/contact", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode[errs.HTTPError](t, rec).Code)
}

func TestManagementRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodPost, "/api/v1/properties", `{"title":"x"}`},
		{http.MethodDelete, "/api/v1/properties/seed-property-1", ""},
		{http.MethodGet, "/api/v1/units", ""},
		{http.MethodGet, "/api/v1/admin/contact-inquiries", ""},
		{http.MethodGet, "/api/v1/admin/emails/contact_inquiry/preview", ""},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := do(r, tc.method, tc.target, tc.body)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decode[errs.HTTPError](t, rec).Code)
		})
	}
}

func TestUnconfiguredBackends(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, target := range []string{"/api/v1/agents", "/api/v1/company-info", "/api/v1/hero-slides"} {
		rec := do(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decode[errs.HTTPError](t, rec).Code, target)
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}

func TestStatus(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])

	checks, ok := body["checks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"status": "not_configured"}, checks["database"])
}
