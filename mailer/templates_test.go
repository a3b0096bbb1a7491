package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeTemplate(t *testing.T) {

	tpl := WelcomeTemplate("Rajesh Sharma", "Bentley Continental GT")

	assert.Equal(t, "Welcome to Luxury Automotive - Rajesh Sharma", tpl.Subject)
	assert.Contains(t, tpl.Body, "Dear Rajesh Sharma")
	assert.Contains(t, tpl.Body, "Bentley Continental GT")
	assert.Empty(t, tpl.HTMLBody)
}

func TestWelcomeTemplateWithoutInterest(t *testing.T) {

	tpl := WelcomeTemplate("Priya Mehta", "")

	assert.Contains(t, tpl.Body, "luxury vehicle specialists will be in touch")
	assert.NotContains(t, tpl.Body, "We note your interest in")
}

func TestFollowupTemplate(t *testing.T) {

	tpl := FollowupTemplate("Priya Mehta", "Your Phantom configuration is ready for review.")

	assert.Contains(t, tpl.Subject, "Priya Mehta")
	assert.Contains(t, tpl.Body, "Your Phantom configuration is ready for review.")
}

func TestDocumentTemplate(t *testing.T) {

	tpl := DocumentTemplate("Rajesh Sharma", []string{"quotation", "contract"}, "Rolls-Royce Phantom")

	assert.Equal(t, "Your Quotation and Contract - Luxury Automotive Experience", tpl.Subject)
	assert.Contains(t, tpl.Body, "Quotation: Detailed pricing")
	assert.Contains(t, tpl.Body, "Contract: Purchase agreement")
	assert.Contains(t, tpl.Body, "Vehicle Information: Rolls-Royce Phantom")
	assert.Contains(t, tpl.HTMLBody, "<strong>Quotation:</strong>")
}

func TestDescribeDocuments(t *testing.T) {

	tests := []struct {
		name  string
		types []string
		want  string
	}{
		{"none", nil, "Documents"},
		{"one", []string{"quotation"}, "Quotation"},
		{"two", []string{"quotation", "contract"}, "Quotation and Contract"},
		{"three", []string{"quotation", "invoice", "contract"}, "Quotation, Invoice, and Contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeDocuments(tt.types))
		})
	}
}
