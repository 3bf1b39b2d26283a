package handlers

import (
	"net/http"

	"agrihub/internal/common"
	"agrihub/internal/onboarding"

	"github.com/labstack/echo/v4"
)

// OnboardingHandlers exposes the resumable signup flow.
type OnboardingHandlers struct {
	controller *onboarding.Controller
}

func NewOnboardingHandlers(controller *onboarding.Controller) *OnboardingHandlers {
	return &OnboardingHandlers{controller: controller}
}

// Status reports the caller's onboarding progress and the step to
// resume at.
func (h *OnboardingHandlers) Status(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	status, err := h.controller.Probe(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to probe onboarding status")
	}

	return c.JSON(http.StatusOK, status)
}

// Complete finishes the remaining onboarding steps. Retrying after a
// partial failure resumes where the last attempt stopped.
func (h *OnboardingHandlers) Complete(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	var req onboarding.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	status, err := h.controller.Complete(ctx, userID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, status)
}
