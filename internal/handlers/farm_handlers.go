package handlers

import (
	"net/http"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/services"

	"github.com/labstack/echo/v4"
)

// FarmHandlers handles farm-related HTTP requests
type FarmHandlers struct {
	farmService services.FarmService
}

func NewFarmHandlers(farmService services.FarmService) *FarmHandlers {
	return &FarmHandlers{farmService: farmService}
}

// CreateFarmRequest represents the farm creation payload
type CreateFarmRequest struct {
	Name         string   `json:"name"`
	Location     *string  `json:"location"`
	Size         *float64 `json:"size"`
	SizeUnit     *string  `json:"size_unit"`
	ManagerName  *string  `json:"manager_name"`
	ManagerEmail *string  `json:"manager_email"`
	Type         string   `json:"type"`
}

func (h *FarmHandlers) CreateFarm(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req CreateFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	farm := &models.Farm{
		Name:         req.Name,
		Location:     req.Location,
		Size:         req.Size,
		SizeUnit:     req.SizeUnit,
		ManagerName:  req.ManagerName,
		ManagerEmail: req.ManagerEmail,
		Type:         req.Type,
	}

	if err := h.farmService.Create(ctx, orgID, farm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, farm)
}

func (h *FarmHandlers) GetFarm(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	farmID, err := common.ValidateUUID(c.Param("id"), "farm ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.farmService.GetByID(ctx, orgID, farmID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Farm not found")
	}

	return c.JSON(http.StatusOK, farm)
}

// UpdateFarmRequest represents the farm update payload
type UpdateFarmRequest struct {
	Name         *string  `json:"name"`
	Location     *string  `json:"location"`
	Size         *float64 `json:"size"`
	SizeUnit     *string  `json:"size_unit"`
	ManagerName  *string  `json:"manager_name"`
	ManagerEmail *string  `json:"manager_email"`
	Type         *string  `json:"type"`
}

func (h *FarmHandlers) UpdateFarm(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	farmID, err := common.ValidateUUID(c.Param("id"), "farm ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	farm, err := h.farmService.GetByID(ctx, orgID, farmID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Farm not found")
	}

	if req.Name != nil {
		farm.Name = *req.Name
	}
	if req.Location != nil {
		farm.Location = req.Location
	}
	if req.Size != nil {
		farm.Size = req.Size
	}
	if req.SizeUnit != nil {
		farm.SizeUnit = req.SizeUnit
	}
	if req.ManagerName != nil {
		farm.ManagerName = req.ManagerName
	}
	if req.ManagerEmail != nil {
		farm.ManagerEmail = req.ManagerEmail
	}
	if req.Type != nil {
		farm.Type = *req.Type
	}

	if err := h.farmService.Update(ctx, orgID, farm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, farm)
}

func (h *FarmHandlers) DeleteFarm(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	farmID, err := common.ValidateUUID(c.Param("id"), "farm ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.farmService.GetByID(ctx, orgID, farmID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Farm not found")
	}

	if err := h.farmService.Delete(ctx, orgID, farmID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete farm")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Farm deleted successfully",
	})
}

// ListFarmsRequest represents query parameters for listing farms
type ListFarmsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *FarmHandlers) ListFarms(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req ListFarmsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	farms, err := h.farmService.List(ctx, orgID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list farms")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"farms":  farms,
		"limit":  limit,
		"offset": offset,
	})
}
