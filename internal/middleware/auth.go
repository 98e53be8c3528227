package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards management routes with Clerk session tokens.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth lets a request through only with a valid Clerk bearer token.
// The session's subject, organization role and permissions are stored in
// the Echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	verify := clerkhttp.WithHeaderAuthorization(
		clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.rejectInvalidToken)),
	)

	return echo.WrapMiddleware(verify)(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Msg("request without a session token")
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.ActiveOrganizationRole)
		c.Set("permissions", claims.Claims.ActiveOrganizationPermissions)

		GetLogger(c).Debug().
			Str("function", "RequireAuth").
			Str("user_id", claims.Subject).
			Msg("user authenticated")

		return next(c)
	})
}

// rejectInvalidToken runs outside Echo when Clerk rejects a token, so it
// writes the HTTPError body itself.
func (auth *AuthMiddleware) rejectInvalidToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusUnauthorized)

	logger := auth.server.Logger.With().
		Str("function", "RequireAuth").
		Str("path", r.URL.Path).
		Str("request_id", w.Header().Get(RequestIDHeader)).
		Logger()

	if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("Unauthorized", false)); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return
	}

	logger.Warn().Msg("rejected invalid session token")
}
