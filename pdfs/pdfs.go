package pdfs

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"privacyguard/models"

	"github.com/jung-kurt/gofpdf"
)

// GSTRate - luxury vehicle GST
const GSTRate = 0.28

// Item - a priced line on a quotation
type Item struct {
	Name  string
	Price float64
}

// InvoiceItem - a quantified line on an invoice
type InvoiceItem struct {
	Name      string
	Qty       float64
	UnitPrice float64
}

// Contract - purchase contract parameters
type Contract struct {
	DeliveryLocation string
	PaymentTerms     string
	Customizations   []string
}

// money - formats an amount with thousands grouping. Core PDF fonts have no
// rupee glyph, so amounts carry an INR prefix instead.
func money(v float64) string {

	s := fmt.Sprintf("%.2f", v)

	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]

	neg := strings.HasPrefix(intPart, "-")

	if neg {
		intPart = intPart[1:]
	}

	var grouped []string

	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}

	grouped = append([]string{intPart}, grouped...)

	out := "INR " + strings.Join(grouped, ",") + "." + parts[1]

	if neg {
		out = "-" + out
	}

	return out
}

// newDoc - A4 portrait with the dealership header
func newDoc(title string, lead models.LeadData) *gofpdf.Fpdf {

	pdf := gofpdf.New("P", "mm", "A4", "")

	pdf.SetMargins(20, 15, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Luxury Automotive", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	meta := fmt.Sprintf("Client: %s | Email: %s | Phone: %s", lead.Name, lead.Email, lead.Phone)
	pdf.CellFormat(0, 6, meta, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	return pdf
}

// totalsTable - subtotal / GST / total rows
func totalsTable(pdf *gofpdf.Fpdf, subtotal float64, totalLabel string) {

	gst := subtotal * GSTRate
	total := subtotal + gst

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(120, 8, "Subtotal", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, money(subtotal), "1", 1, "R", false, 0, "")

	pdf.CellFormat(120, 8, "GST (28%)", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, money(gst), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(120, 8, totalLabel, "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, money(total), "1", 1, "R", false, 0, "")
}

// GenerateQuotation - quotation PDF with GST for the selected configuration
func GenerateQuotation(lead models.LeadData, basePrice float64, items []Item) ([]byte, error) {

	pdf := newDoc("Quotation", lead)

	if len(items) == 0 {

		name := lead.Interest

		if name == "" {
			name = "Vehicle"
		}

		items = []Item{{Name: name, Price: basePrice}}
	}

	// item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(16, 18, 24)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(120, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Price (excl. GST)", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)

	var subtotal float64

	for _, it := range items {
		pdf.CellFormat(120, 8, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, money(it.Price), "1", 1, "R", false, 0, "")
		subtotal += it.Price
	}

	pdf.Ln(4)
	totalsTable(pdf, subtotal, "Total")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "All amounts are in INR. Prices include GST as applicable.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("cannot render quotation pdf. %v", err)
	}

	return buf.Bytes(), nil
}

// GenerateInvoice - tax invoice PDF with GST computation
func GenerateInvoice(lead models.LeadData, items []InvoiceItem) ([]byte, error) {

	pdf := newDoc("Tax Invoice", lead)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(16, 18, 24)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)

	var subtotal float64

	for _, it := range items {

		amount := it.Qty * it.UnitPrice

		pdf.CellFormat(90, 8, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%.0f", it.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, money(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, money(amount), "1", 1, "R", false, 0, "")

		subtotal += amount
	}

	pdf.Ln(4)
	totalsTable(pdf, subtotal, "Total Payable")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice Date: %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("cannot render invoice pdf. %v", err)
	}

	return buf.Bytes(), nil
}

// contract clauses, rendered in order
var clauses = []struct{ Title, Text string }{
	{"Scope of Purchase", "The Buyer agrees to purchase the vehicle including approved customizations as per final order form."},
	{"Price and Taxes", "All prices are in INR and inclusive of applicable taxes. GST at 28% applies to luxury vehicles and shall be itemized in the tax invoice."},
	{"Payments", "Payments are to be made via bank transfer or other approved modes as per the agreed payment terms."},
	{"Delivery", "Delivery will be made at the agreed location subject to availability, regulatory compliance, and receipt of due payments."},
	{"Inspection & Acceptance", "Buyer may inspect the vehicle upon delivery. Acceptance occurs upon signing the delivery note or registration completion."},
	{"Registration & Compliance", "All RTO registration, insurance, and statutory compliances will be coordinated by the dealership with Buyer cooperation."},
	{"Warranty", "Manufacturer warranty terms apply as per official documentation. Any extended warranties will be listed separately."},
	{"Cancellation & Refunds", "If the Buyer cancels prior to delivery, cancellation fees may apply to cover actual losses incurred."},
	{"Confidentiality", "Both parties shall keep this agreement, pricing, and specifications confidential, except as required by law."},
	{"Limitation of Liability", "In no event shall the dealership be liable for indirect or consequential losses. Liability is limited to the amounts paid."},
	{"Governing Law & Jurisdiction", "This contract is governed by the laws of India. Courts in Mumbai shall have exclusive jurisdiction."},
	{"Arbitration", "Any dispute shall be referred to a sole arbitrator appointed mutually, under the Arbitration and Conciliation Act, 1996."},
	{"Force Majeure", "Neither party shall be liable for delays due to events beyond reasonable control, including natural calamities or government actions."},
	{"Entire Agreement", "This document with its annexures constitutes the entire agreement and supersedes prior communications on the subject."},
}

// GenerateContract - purchase contract with formal clauses and signatures
func GenerateContract(lead models.LeadData, contract Contract) ([]byte, error) {

	if contract.PaymentTerms == "" {
		contract.PaymentTerms = "100% on delivery"
	}

	if contract.DeliveryLocation == "" {
		contract.DeliveryLocation = "TBD"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")

	pdf.SetMargins(22, 22, 22)

	// double border and confidential footer on every page
	pdf.SetFooterFunc(func() {
		w, h := pdf.GetPageSize()

		pdf.SetDrawColor(34, 38, 46)
		pdf.SetLineWidth(0.7)
		pdf.Rect(12, 12, w-24, h-24, "D")

		pdf.SetDrawColor(58, 64, 74)
		pdf.SetLineWidth(0.25)
		pdf.Rect(16, 16, w-32, h-32, "D")

		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(68, 75, 87)
		pdf.CellFormat(0, 5, "Confidential - For the intended recipient only", "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Luxury Automotive", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Purchase Contract", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// party details
	rows := [][2]string{
		{"Buyer Name", lead.Name},
		{"Buyer Email", lead.Email},
		{"Buyer Phone", lead.Phone},
		{"Vehicle", lead.Interest},
		{"Delivery Location", contract.DeliveryLocation},
		{"Payment Terms", contract.PaymentTerms},
	}

	pdf.SetFont("Helvetica", "", 10)

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(110, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(3)

	customizations := strings.Join(contract.Customizations, ", ")

	if customizations == "" {
		customizations = "None"
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Customizations: %s", customizations), "", "L", false)
	pdf.Ln(2)

	for i, clause := range clauses {

		text := clause.Text

		// the payments clause carries the negotiated terms
		if clause.Title == "Payments" {
			text = contract.PaymentTerms + ". " + text
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s", i+1, clause.Title), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5.5, text, "", "L", false)
		pdf.Ln(1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Signatures", "", 1, "L", false, 0, "")
	pdf.Ln(10)

	today := time.Now().Format("2006-01-02")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(80, 6, "__________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "__________________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(80, 6, lead.Name, "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "For Luxury Automotive", "", 1, "C", false, 0, "")
	pdf.CellFormat(80, 6, today, "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, today, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(68, 75, 87)
	pdf.MultiCell(0, 4.5, "Note: Please review all details carefully. For queries, contact your Relationship Manager.", "", "L", false)

	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("cannot render contract pdf. %v", err)
	}

	return buf.Bytes(), nil
}
