package handlers

import (
	"net/http"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WarehouseHandlers handles warehouse-related HTTP requests
type WarehouseHandlers struct {
	warehouseService services.WarehouseService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseService: warehouseService}
}

// CreateWarehouseRequest represents the warehouse creation payload
type CreateWarehouseRequest struct {
	FarmID   *uuid.UUID `json:"farm_id"`
	Name     string     `json:"name"`
	Address  *string    `json:"address"`
	Capacity *float64   `json:"capacity"`
}

func (h *WarehouseHandlers) CreateWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req CreateWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	warehouse := &models.Warehouse{
		FarmID:   req.FarmID,
		Name:     req.Name,
		Address:  req.Address,
		Capacity: req.Capacity,
	}

	if err := h.warehouseService.Create(ctx, orgID, warehouse); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, warehouse)
}

func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	warehouseID, err := common.ValidateUUID(c.Param("id"), "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	warehouse, err := h.warehouseService.GetByID(ctx, orgID, warehouseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}

	return c.JSON(http.StatusOK, warehouse)
}

// UpdateWarehouseRequest represents the warehouse update payload
type UpdateWarehouseRequest struct {
	FarmID   *uuid.UUID `json:"farm_id"`
	Name     *string    `json:"name"`
	Address  *string    `json:"address"`
	Capacity *float64   `json:"capacity"`
}

func (h *WarehouseHandlers) UpdateWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	warehouseID, err := common.ValidateUUID(c.Param("id"), "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	warehouse, err := h.warehouseService.GetByID(ctx, orgID, warehouseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}

	if req.FarmID != nil {
		warehouse.FarmID = req.FarmID
	}
	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Address != nil {
		warehouse.Address = req.Address
	}
	if req.Capacity != nil {
		warehouse.Capacity = req.Capacity
	}

	if err := h.warehouseService.Update(ctx, orgID, warehouse); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, warehouse)
}

func (h *WarehouseHandlers) DeleteWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	warehouseID, err := common.ValidateUUID(c.Param("id"), "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.warehouseService.GetByID(ctx, orgID, warehouseID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}

	if err := h.warehouseService.Deactivate(ctx, orgID, warehouseID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete warehouse")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Warehouse deleted successfully",
	})
}

// ListWarehousesRequest represents query parameters for listing warehouses
type ListWarehousesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req ListWarehousesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	warehouses, err := h.warehouseService.List(ctx, orgID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list warehouses")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouses": warehouses,
		"limit":      limit,
		"offset":     offset,
	})
}
