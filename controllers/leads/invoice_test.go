package leads

import (
	"bytes"
	"testing"

	"privacyguard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceForLead(t *testing.T) {

	data := models.LeadData{
		Name:     "Rajesh Sharma",
		Phone:    "+919876543210",
		Email:    "rajesh@example.com",
		Interest: "Rolls-Royce Phantom",
	}

	doc, tpl, err := invoiceForLead(data, 100000000.0)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, "Your Invoice - Luxury Automotive Experience", tpl.Subject)
	assert.Contains(t, tpl.Body, "Invoice: Official invoice with payment terms")
}

func TestInvoiceForLeadWithoutInterest(t *testing.T) {

	doc, _, err := invoiceForLead(models.LeadData{
		Name:  "Priya Mehta",
		Email: "priya@example.com",
	}, 80000000.0)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
