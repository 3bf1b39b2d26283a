package handlers

import (
	"net/http"

	"agrihub/internal/common"
	"agrihub/internal/repositories"

	"github.com/labstack/echo/v4"
)

// AccountHandlers exposes the chart of accounts.
type AccountHandlers struct {
	accountRepo repositories.AccountRepository
}

func NewAccountHandlers(accountRepo repositories.AccountRepository) *AccountHandlers {
	return &AccountHandlers{accountRepo: accountRepo}
}

// ListAccounts returns the organization's chart of accounts ordered by
// code.
func (h *AccountHandlers) ListAccounts(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	accounts, err := h.accountRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list accounts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}

// GetAccountByCode returns a single ledger account.
func (h *AccountHandlers) GetAccountByCode(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	code := c.Param("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Account code is required")
	}

	account, err := h.accountRepo.GetByCode(ctx, orgID, code)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Account not found")
	}

	return c.JSON(http.StatusOK, account)
}
