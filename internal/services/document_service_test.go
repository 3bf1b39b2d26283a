package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceObjectName_UsesInvoiceNumber(t *testing.T) {
	orgID := uuid.MustParse("8b7c6a19-21d9-4f59-a1a9-b19f6f2f1f10")
	productID := uuid.MustParse("2f9f9a66-4f3a-4a43-9f57-0a4f2fe4ccaf")

	name := InvoiceObjectName(orgID, productID, "INV-2024-0042", time.Now())

	assert.Equal(t, "8b7c6a19-21d9-4f59-a1a9-b19f6f2f1f10/2f9f9a66-4f3a-4a43-9f57-0a4f2fe4ccaf/INV-2024-0042.pdf", name)
}

func TestInvoiceObjectName_FallsBackToTimestamp(t *testing.T) {
	orgID := uuid.New()
	productID := uuid.New()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	name := InvoiceObjectName(orgID, productID, "", now)

	expected := fmt.Sprintf("%s/%s/%d.pdf", orgID, productID, now.Unix())
	assert.Equal(t, expected, name)
}

func TestInvoiceObjectName_BlankInvoiceNumberIsTimestamp(t *testing.T) {
	now := time.Now()

	name := InvoiceObjectName(uuid.New(), uuid.New(), "   ", now)

	assert.Contains(t, name, fmt.Sprintf("%d.pdf", now.Unix()))
}
