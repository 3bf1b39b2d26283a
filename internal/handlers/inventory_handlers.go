package handlers

import (
	"log"
	"net/http"
	"time"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles inventory-related HTTP requests
type InventoryHandlers struct {
	inventoryService services.InventoryService
	documentService  services.DocumentService
}

func NewInventoryHandlers(inventoryService services.InventoryService, documentService services.DocumentService) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		documentService:  documentService,
	}
}

// CreateInventoryItemRequest represents the item creation payload
type CreateInventoryItemRequest struct {
	FarmID        *uuid.UUID `json:"farm_id"`
	Name          string     `json:"name"`
	Quantity      float64    `json:"quantity"`
	Unit          string     `json:"unit"`
	CostPerUnit   float64    `json:"cost_per_unit"`
	PackagingType *string    `json:"packaging_type"`
	PackagingSize *float64   `json:"packaging_size"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	WarehouseID   *uuid.UUID `json:"warehouse_id"`
	BatchNumber   *string    `json:"batch_number"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	MinimumStock  float64    `json:"minimum_stock"`
}

func (h *InventoryHandlers) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req CreateInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}
	if req.Unit == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Unit is required")
	}

	item := &models.InventoryItem{
		FarmID:        req.FarmID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		CostPerUnit:   req.CostPerUnit,
		PackagingType: req.PackagingType,
		PackagingSize: req.PackagingSize,
		SupplierID:    req.SupplierID,
		WarehouseID:   req.WarehouseID,
		BatchNumber:   req.BatchNumber,
		ExpiryDate:    req.ExpiryDate,
		MinimumStock:  req.MinimumStock,
	}

	view, err := h.inventoryService.Create(ctx, orgID, item)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, view)
}

func (h *InventoryHandlers) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "item ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.inventoryService.GetByID(ctx, orgID, itemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}

	return c.JSON(http.StatusOK, view)
}

// UpdateInventoryItemRequest represents the item update payload
type UpdateInventoryItemRequest struct {
	Name          *string    `json:"name"`
	Quantity      *float64   `json:"quantity"`
	Unit          *string    `json:"unit"`
	CostPerUnit   *float64   `json:"cost_per_unit"`
	PackagingType *string    `json:"packaging_type"`
	PackagingSize *float64   `json:"packaging_size"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	WarehouseID   *uuid.UUID `json:"warehouse_id"`
	BatchNumber   *string    `json:"batch_number"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	MinimumStock  *float64   `json:"minimum_stock"`
}

func (h *InventoryHandlers) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "item ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	existing, err := h.inventoryService.GetByID(ctx, orgID, itemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}

	item := existing.InventoryItem
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = *req.CostPerUnit
	}
	if req.PackagingType != nil {
		item.PackagingType = req.PackagingType
	}
	if req.PackagingSize != nil {
		item.PackagingSize = req.PackagingSize
	}
	if req.SupplierID != nil {
		item.SupplierID = req.SupplierID
	}
	if req.WarehouseID != nil {
		item.WarehouseID = req.WarehouseID
	}
	if req.BatchNumber != nil {
		item.BatchNumber = req.BatchNumber
	}
	if req.ExpiryDate != nil {
		item.ExpiryDate = req.ExpiryDate
	}
	if req.MinimumStock != nil {
		item.MinimumStock = *req.MinimumStock
	}

	view, err := h.inventoryService.Update(ctx, orgID, &item)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, view)
}

func (h *InventoryHandlers) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "item ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.inventoryService.GetByID(ctx, orgID, itemID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}

	if err := h.inventoryService.Delete(ctx, orgID, itemID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete item")
	}

	// The item row is gone; orphaned documents are only log noise.
	if err := h.documentService.DeleteItemInvoices(ctx, orgID, itemID); err != nil {
		log.Printf("WARN: invoice cleanup failed for item %s: %v", itemID, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Item deleted successfully",
	})
}

// ListInventoryRequest represents query parameters for listing items
type ListInventoryRequest struct {
	FarmID *uuid.UUID `query:"farm_id"`
	Limit  int        `query:"limit"`
	Offset int        `query:"offset"`
}

func (h *InventoryHandlers) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	var req ListInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	items, err := h.inventoryService.List(ctx, orgID, req.FarmID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list items")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// UploadInvoice attaches a purchase invoice document to an item.
func (h *InventoryHandlers) UploadInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "item ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.inventoryService.GetByID(ctx, orgID, itemID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}

	file, err := c.FormFile("invoice")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invoice file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read invoice file")
	}
	defer src.Close()

	objectName := services.InvoiceObjectName(orgID, itemID, c.FormValue("invoice_number"), time.Now())
	if err := h.documentService.UploadInvoice(ctx, objectName, src, file.Size); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store invoice")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"object_name": objectName,
	})
}

// GetInvoiceURL returns a short-lived download link for a stored
// invoice document.
func (h *InventoryHandlers) GetInvoiceURL(c echo.Context) error {
	ctx := c.Request().Context()

	orgID, ok := common.GetOrganizationIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Organization not found")
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "item ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Without an invoice number the newest stored document is served,
	// which covers uploads that fell back to a timestamp name.
	var objectName string
	if invoiceNumber := c.QueryParam("invoice_number"); invoiceNumber != "" {
		objectName = services.InvoiceObjectName(orgID, itemID, invoiceNumber, time.Now())
	} else {
		names, err := h.documentService.ListItemInvoices(ctx, orgID, itemID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list invoices")
		}
		if len(names) == 0 {
			return echo.NewHTTPError(http.StatusNotFound, "No invoices found for item")
		}
		objectName = names[0]
	}

	url, err := h.documentService.GetPresignedURL(ctx, objectName, 15*time.Minute)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate download link")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"object_name": objectName,
		"url":         url,
	})
}
