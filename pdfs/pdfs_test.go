package pdfs

import (
	"bytes"
	"testing"

	"privacyguard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLead = models.LeadData{
	Name:        "Rajesh Sharma",
	Phone:       "+919876543210",
	Email:       "rajesh@example.com",
	Source:      "website_form",
	Interest:    "Rolls-Royce Phantom",
	BudgetRange: "₹8-10 Crores",
}

func TestMoney(t *testing.T) {

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "INR 0.00"},
		{950, "INR 950.00"},
		{100000000, "INR 100,000,000.00"},
		{12345678.5, "INR 12,345,678.50"},
		{-4500, "-INR 4,500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money(tt.amount))
	}
}

func TestGenerateQuotation(t *testing.T) {

	doc, err := GenerateQuotation(testLead, 100000000.0, nil)

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output is a pdf document")
}

func TestGenerateQuotationWithItems(t *testing.T) {

	items := []Item{
		{Name: "Rolls-Royce Ghost", Price: 80000000},
		{Name: "Bespoke Interior Package", Price: 5000000},
	}

	doc, err := GenerateQuotation(testLead, 0, items)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateInvoice(t *testing.T) {

	items := []InvoiceItem{
		{Name: "Rolls-Royce Phantom", Qty: 1, UnitPrice: 100000000},
		{Name: "Extended Warranty", Qty: 1, UnitPrice: 1500000},
	}

	doc, err := GenerateInvoice(testLead, items)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateContract(t *testing.T) {

	doc, err := GenerateContract(testLead, Contract{
		DeliveryLocation: "Mumbai Showroom",
		PaymentTerms:     "50% booking, 50% on delivery",
		Customizations:   []string{"bespoke_interior", "two_tone_paint"},
	})

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateContractDefaults(t *testing.T) {

	doc, err := GenerateContract(testLead, Contract{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
