package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"agrihub/internal/common"
	"agrihub/internal/repositories"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// JWTMiddleware authenticates requests with tokens issued by the auth
// provider and resolves the caller's organization from their first
// active membership. Users mid-onboarding have no membership yet, so
// only the user id lands in context for them.
type JWTMiddleware struct {
	jwks        *keyfunc.JWKS
	memberships repositories.MembershipRepository
}

func NewJWTMiddleware(jwksURL string, memberships repositories.MembershipRepository) (*JWTMiddleware, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			log.Printf("WARN: jwks refresh failed: %v", err)
		},
	})
	if err != nil {
		return nil, err
	}
	return &JWTMiddleware{jwks: jwks, memberships: memberships}, nil
}

func (m *JWTMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token")
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, m.jwks.Keyfunc)
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token subject")
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token subject")
		}

		ctx := common.WithUserID(c.Request().Context(), userID)

		membership, err := m.memberships.FirstActiveByUser(ctx, userID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve organization")
		}
		if membership != nil {
			ctx = common.WithOrganizationID(ctx, membership.OrganizationID)
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireOrganization rejects requests whose user has not finished
// onboarding into an organization.
func (m *JWTMiddleware) RequireOrganization(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := common.GetOrganizationIDFromContext(c.Request().Context()); !ok {
			return echo.NewHTTPError(http.StatusForbidden, "Onboarding not completed")
		}
		return next(c)
	}
}
