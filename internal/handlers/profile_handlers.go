package handlers

import (
	"net/http"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/labstack/echo/v4"
)

// ProfileHandlers handles user profile HTTP requests
type ProfileHandlers struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileHandlers(profileRepo repositories.ProfileRepository) *ProfileHandlers {
	return &ProfileHandlers{profileRepo: profileRepo}
}

func (h *ProfileHandlers) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	profile, err := h.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfileRequest represents the profile update payload
type UpdateProfileRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Timezone  *string `json:"timezone"`
}

func (h *ProfileHandlers) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.FirstName == "" || req.LastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "First and last name are required")
	}

	profile := &models.UserProfile{
		ID:        userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Timezone:  req.Timezone,
	}

	if err := h.profileRepo.Upsert(ctx, profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save profile")
	}

	return c.JSON(http.StatusOK, profile)
}
