package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StructureHandlers handles structure-related HTTP requests
type StructureHandlers struct {
	structureService services.StructureService
}

func NewStructureHandlers(structureService services.StructureService) *StructureHandlers {
	return &StructureHandlers{structureService: structureService}
}

// CreateStructureRequest represents the structure creation payload.
// Details is decoded against the declared type, so a basin payload on
// a stable is rejected at the boundary.
type CreateStructureRequest struct {
	FarmID           *uuid.UUID           `json:"farm_id"`
	Name             string               `json:"name"`
	Type             models.StructureType `json:"type"`
	Condition        *string              `json:"condition"`
	Details          json.RawMessage      `json:"structure_details"`
	InstallationDate *time.Time           `json:"installation_date"`
}

func (h *StructureHandlers) CreateStructure(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req CreateStructureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	details, err := models.DecodeStructureDetails(req.Type, req.Details)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	structure := &models.Structure{
		FarmID:           req.FarmID,
		Name:             req.Name,
		Type:             req.Type,
		Condition:        req.Condition,
		Details:          details,
		InstallationDate: req.InstallationDate,
	}

	if err := h.structureService.Create(ctx, orgID, structure); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, structure)
}

func (h *StructureHandlers) GetStructure(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	structureID, err := common.ValidateUUID(c.Param("id"), "structure ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	structure, err := h.structureService.GetByID(ctx, orgID, structureID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Structure not found")
	}

	return c.JSON(http.StatusOK, structure)
}

// UpdateStructureRequest represents the structure update payload
type UpdateStructureRequest struct {
	Name             *string         `json:"name"`
	Condition        *string         `json:"condition"`
	Details          json.RawMessage `json:"structure_details"`
	InstallationDate *time.Time      `json:"installation_date"`
}

func (h *StructureHandlers) UpdateStructure(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	structureID, err := common.ValidateUUID(c.Param("id"), "structure ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateStructureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	structure, err := h.structureService.GetByID(ctx, orgID, structureID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Structure not found")
	}

	if req.Name != nil {
		structure.Name = *req.Name
	}
	if req.Condition != nil {
		structure.Condition = req.Condition
	}
	if req.InstallationDate != nil {
		structure.InstallationDate = req.InstallationDate
	}
	if len(req.Details) > 0 {
		// The structure type is immutable; new details must decode
		// against the existing type.
		details, err := models.DecodeStructureDetails(structure.Type, req.Details)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		structure.Details = details
	}

	if err := h.structureService.Update(ctx, orgID, structure); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, structure)
}

func (h *StructureHandlers) DeleteStructure(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	structureID, err := common.ValidateUUID(c.Param("id"), "structure ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.structureService.GetByID(ctx, orgID, structureID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Structure not found")
	}

	if err := h.structureService.Deactivate(ctx, orgID, structureID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete structure")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Structure deleted successfully",
	})
}

// ListStructuresRequest represents query parameters for listing structures
type ListStructuresRequest struct {
	FarmID *uuid.UUID `query:"farm_id"`
	Limit  int        `query:"limit"`
	Offset int        `query:"offset"`
}

func (h *StructureHandlers) ListStructures(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req ListStructuresRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	structures, err := h.structureService.List(ctx, orgID, req.FarmID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list structures")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"structures": structures,
		"limit":      limit,
		"offset":     offset,
	})
}
