package leads

import (
	"database/sql"
	"fmt"

	"privacyguard/mailer"
	"privacyguard/models"
	"privacyguard/models/constants/pipeline"
	"privacyguard/pdfs"
	"privacyguard/workflow"
)

// invoiceForLead - renders the tax invoice and its delivery copy
func invoiceForLead(data models.LeadData, basePrice float64) ([]byte, mailer.Template, error) {

	name := data.Interest

	if name == "" {
		name = "Vehicle"
	}

	doc, err := pdfs.GenerateInvoice(data, []pdfs.InvoiceItem{
		{Name: name, Qty: 1, UnitPrice: basePrice},
	})

	if err != nil {
		return nil, mailer.Template{}, err
	}

	return doc, mailer.DocumentTemplate(data.Name, []string{"invoice"}, data.Interest), nil
}

// sendInvoice - emails the tax invoice for a closed deal
func (a *Action) sendInvoice(leadID int64) error {

	var (
		data     models.LeadData
		interest sql.NullString
	)

	err := a.DB.Raw(`
		SELECT name, phone, email, interest
		FROM leads
		WHERE id = ?;`, leadID,
	).Row().Scan(&data.Name, &data.Phone, &data.Email, &interest)

	if err != nil {
		return fmt.Errorf("cannot fetch lead %d for invoicing. %v", leadID, err)
	}

	data.Interest = interest.String

	basePrice := a.Config.GetFloat64("documents.base_price")

	if basePrice == 0 {
		basePrice = 100000000.0
	}

	doc, tpl, err := invoiceForLead(data, basePrice)

	if err != nil {
		return err
	}

	err = a.Mail.Send(data.Email, tpl.Subject, tpl.Body, tpl.HTMLBody, []mailer.Attachment{
		{Filename: "invoice.pdf", Content: doc, MIME: "application/pdf"},
	})

	if err != nil {
		return err
	}

	return workflow.LogInteraction(a.DB, leadID, pipeline.Document,
		"generate_invoice", "executed", map[string]interface{}{
			"document_types": []string{"invoice"},
			"email_sent":     true,
		})
}
