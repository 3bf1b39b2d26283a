package handlers

import (
	"net/http"

	"agrihub/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers completes auth provider email flows.
type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// Callback lands the user after confirming an email link. The next
// query parameter is untrusted input; invalid values fall back to the
// dashboard instead of failing the flow.
func (h *AuthHandlers) Callback(c echo.Context) error {
	callbackType := c.QueryParam("type")
	next := c.QueryParam("next")

	target, err := h.authService.RedirectTarget(callbackType, next)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown callback type")
	}

	return c.Redirect(http.StatusFound, target)
}
