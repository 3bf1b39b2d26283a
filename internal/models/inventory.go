package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock status is derived at read time from quantity against the
// minimum stock threshold. It is never persisted.
const (
	StockAvailable = "available"
	StockLow       = "low_stock"
	StockOut       = "out_of_stock"
)

// InventoryItemFilter holds search and filter criteria for stock queries
type InventoryItemFilter struct {
	Query       string     `json:"query,omitempty"`
	SupplierID  *uuid.UUID `json:"supplier_id,omitempty"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
	LowStock    bool       `json:"low_stock,omitempty"`
	SortBy      string     `json:"sort_by,omitempty"`
	SortOrder   string     `json:"sort_order,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}

type InventoryItem struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	OrganizationID uuid.UUID  `json:"organization_id" db:"organization_id"`
	FarmID         *uuid.UUID `json:"farm_id" db:"farm_id"`
	Name           string     `json:"name" db:"name"`
	Quantity       float64    `json:"quantity" db:"quantity"`
	Unit           string     `json:"unit" db:"unit"`
	CostPerUnit    float64    `json:"cost_per_unit" db:"cost_per_unit"`
	PackagingType  *string    `json:"packaging_type" db:"packaging_type"`
	PackagingSize  *float64   `json:"packaging_size" db:"packaging_size"`
	SupplierID     *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	WarehouseID    *uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	BatchNumber    *string    `json:"batch_number" db:"batch_number"`
	ExpiryDate     *time.Time `json:"expiry_date" db:"expiry_date"`
	MinimumStock   float64    `json:"minimum_stock" db:"minimum_stock"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

func (i InventoryItem) ResourceID() uuid.UUID { return i.ID }

func (i InventoryItem) WithTenant(orgID uuid.UUID, farmID *uuid.UUID) InventoryItem {
	i.OrganizationID = orgID
	if farmID != nil {
		i.FarmID = farmID
	}
	return i
}

// Status derives the stock status from quantity vs the minimum threshold.
func (i InventoryItem) Status() string {
	switch {
	case i.Quantity <= 0:
		return StockOut
	case i.Quantity <= i.MinimumStock:
		return StockLow
	default:
		return StockAvailable
	}
}
