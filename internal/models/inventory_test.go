package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInventoryItemStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		minimum  float64
		want     string
	}{
		{"above threshold", 50, 10, StockAvailable},
		{"exactly at threshold", 10, 10, StockLow},
		{"below threshold", 5, 10, StockLow},
		{"zero quantity", 0, 10, StockOut},
		{"negative quantity", -1, 10, StockOut},
		{"zero threshold with stock", 3, 0, StockAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := InventoryItem{Quantity: tt.quantity, MinimumStock: tt.minimum}
			assert.Equal(t, tt.want, item.Status())
		})
	}
}

func TestInventoryItemWithTenant(t *testing.T) {
	orgID := uuid.New()
	farmID := uuid.New()
	existingFarm := uuid.New()

	stamped := InventoryItem{}.WithTenant(orgID, &farmID)
	assert.Equal(t, orgID, stamped.OrganizationID)
	assert.Equal(t, farmID, *stamped.FarmID)

	// A nil farm scope leaves the item's own farm untouched.
	kept := InventoryItem{FarmID: &existingFarm}.WithTenant(orgID, nil)
	assert.Equal(t, existingFarm, *kept.FarmID)
}
