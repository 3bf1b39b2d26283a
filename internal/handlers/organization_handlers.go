package handlers

import (
	"net/http"

	"agrihub/internal/common"
	"agrihub/internal/services"

	"github.com/labstack/echo/v4"
)

// OrganizationHandlers handles organization-related HTTP requests
type OrganizationHandlers struct {
	orgService services.OrganizationService
}

func NewOrganizationHandlers(orgService services.OrganizationService) *OrganizationHandlers {
	return &OrganizationHandlers{orgService: orgService}
}

// GetOrganization returns the caller's active organization.
func (h *OrganizationHandlers) GetOrganization(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	org, err := h.orgService.GetByID(ctx, orgID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Organization not found")
	}

	return c.JSON(http.StatusOK, org)
}

// UpdateOrganizationRequest represents the organization update payload
type UpdateOrganizationRequest struct {
	Name string `json:"name"`
}

// UpdateOrganization renames the caller's organization.
func (h *OrganizationHandlers) UpdateOrganization(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req UpdateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	org, err := h.orgService.GetByID(ctx, orgID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Organization not found")
	}

	org.Name = req.Name
	if err := h.orgService.Update(ctx, org); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, org)
}

// ListMembersRequest represents query parameters for listing members
type ListMembersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListMembers returns the organization's memberships.
func (h *OrganizationHandlers) ListMembers(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req ListMembersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	members, err := h.orgService.ListMembers(ctx, orgID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list members")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"members": members,
		"limit":   limit,
		"offset":  offset,
	})
}
