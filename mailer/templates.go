package mailer

import (
	"fmt"
	"strings"
)

// Template - rendered email copy
type Template struct {
	Subject  string
	Body     string
	HTMLBody string
}

// WelcomeTemplate - first-touch welcome for a new lead
func WelcomeTemplate(customerName, vehicleInterest string) Template {

	interestLine := "Our team of luxury vehicle specialists will be in touch shortly to understand your preferences and requirements."

	if vehicleInterest != "" {
		interestLine = fmt.Sprintf(
			"We note your interest in %s and our specialists will be in touch shortly to discuss your requirements in detail.",
			vehicleInterest,
		)
	}

	body := fmt.Sprintf(`Dear %s,

A warm welcome to Luxury Automotive!

Thank you for your interest in our exclusive collection of luxury vehicles. We are delighted to have you as our valued prospect and look forward to providing you with an unparalleled automotive experience.

At Luxury Automotive, we specialize in:
- Premium luxury vehicles from world-renowned brands
- Personalized consultation and expert guidance
- Exceptional customer service and support
- Comprehensive after-sales services

%s

What's Next:
1. Our specialist will contact you within 24 hours
2. Personalized consultation to understand your needs
3. Curated vehicle recommendations based on your preferences
4. Arrangement of private viewings and test drives

We appreciate your trust in Luxury Automotive and are committed to making your luxury vehicle journey exceptional.

Best regards,

The Luxury Automotive Team
"Excellence in Every Detail"

---
This email is confidential. If received in error, please delete and notify us immediately.
`, customerName, interestLine)

	return Template{
		Subject: fmt.Sprintf("Welcome to Luxury Automotive - %s", customerName),
		Body:    body,
	}
}

// FollowupTemplate - re-engagement copy for a pending lead
func FollowupTemplate(customerName, context string) Template {

	if context == "" {
		context = "We understand that choosing a luxury vehicle is an important decision, and we're here to support you throughout the process."
	}

	body := fmt.Sprintf(`Dear %s,

I hope this email finds you well.

I wanted to personally follow up on your recent inquiry with Luxury Automotive. Your interest in our premium vehicle collection is greatly appreciated, and we want to ensure we're providing you with the exceptional service you deserve.

%s

Our Commitment to You:
- Personalized attention from our luxury vehicle specialists
- Transparent and competitive pricing
- Comprehensive vehicle history and documentation
- Flexible financing and payment options
- Ongoing support and maintenance services

We would love to schedule a convenient time to discuss your requirements in detail or arrange a private viewing of vehicles that match your preferences.

Thank you for considering Luxury Automotive for your premium automotive needs. We look forward to hearing from you soon.

Warm regards,

The Luxury Automotive Team
"Excellence in Every Detail"
`, customerName, context)

	return Template{
		Subject: fmt.Sprintf("Following Up on Your Luxury Vehicle Inquiry - %s", customerName),
		Body:    body,
	}
}

// DocumentTemplate - delivery copy for generated documents
func DocumentTemplate(customerName string, documentTypes []string, vehicleInfo string) Template {

	desc := describeDocuments(documentTypes)

	var details strings.Builder

	for _, t := range documentTypes {
		switch strings.ToLower(t) {
		case "quotation":
			details.WriteString("- Quotation: Detailed pricing and specifications for your selected vehicle\n")
		case "invoice":
			details.WriteString("- Invoice: Official invoice with payment terms and conditions\n")
		case "contract":
			details.WriteString("- Contract: Purchase agreement with terms and conditions\n")
		default:
			details.WriteString(fmt.Sprintf("- %s: Important documentation for your reference\n", strings.Title(t)))
		}
	}

	vehicleLine := ""

	if vehicleInfo != "" {
		vehicleLine = fmt.Sprintf("\nVehicle Information: %s\n", vehicleInfo)
	}

	body := fmt.Sprintf(`Dear %s,

Greetings from Luxury Automotive!

We hope this email finds you well. Thank you for your interest in our premium luxury vehicle collection.

We are pleased to provide you with your requested %s as attached to this email. Our team has carefully prepared these documents to ensure all details are accurate and comprehensive.

Document Details:
%s%s
Please review the attached documents carefully. Should you have any questions or require clarification on any aspect, our dedicated team is here to assist you.

Next Steps:
- Review all attached documents thoroughly
- Contact us if you need any modifications or have questions
- Our luxury vehicle specialists are available for consultation
- We can arrange a private viewing or test drive at your convenience

We appreciate your trust in Luxury Automotive and look forward to providing you with an exceptional luxury vehicle experience.

Warm regards,

The Luxury Automotive Team
"Excellence in Every Detail"

---
This email and any attachments are confidential and may be legally privileged. If you are not the intended recipient, please notify us immediately and delete this email.
`, customerName, strings.ToLower(desc), details.String(), vehicleLine)

	var items strings.Builder

	for _, t := range documentTypes {
		items.WriteString(fmt.Sprintf("<li><strong>%s:</strong> Professional documentation for your reference</li>", strings.Title(t)))
	}

	if vehicleInfo != "" {
		vehicleLine = fmt.Sprintf("<p><strong>Vehicle Information:</strong> %s</p>", vehicleInfo)
	} else {
		vehicleLine = ""
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
.header { background: linear-gradient(135deg, #1f2937, #374151); color: white; padding: 20px; text-align: center; }
.content { padding: 30px; background: #f9fafb; }
.document-list { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #3b82f6; }
.footer { background: #1f2937; color: white; padding: 20px; text-align: center; font-size: 12px; }
.highlight { color: #3b82f6; font-weight: bold; }
</style>
</head>
<body>
<div class="header"><h1>Luxury Automotive</h1><p>Excellence in Every Detail</p></div>
<div class="content">
<h2>Dear %s,</h2>
<p>Greetings from <strong>Luxury Automotive</strong>!</p>
<p>We are pleased to provide you with your requested <span class="highlight">%s</span> as attached to this email.</p>
<div class="document-list"><h3>Document Details:</h3><ul>%s</ul>%s</div>
<h3>Next Steps:</h3>
<ul>
<li>Review all attached documents thoroughly</li>
<li>Contact us if you need any modifications or have questions</li>
<li>Our luxury vehicle specialists are available for consultation</li>
</ul>
<p>Thank you for choosing <strong>Luxury Automotive</strong> for your premium automotive needs.</p>
<p><strong>Warm regards,</strong><br><strong>The Luxury Automotive Team</strong></p>
</div>
<div class="footer"><p>"Excellence in Every Detail"</p><p><small>This email and any attachments are confidential and may be legally privileged.</small></p></div>
</body>
</html>`, customerName, strings.ToLower(desc), items.String(), vehicleLine)

	return Template{
		Subject:  fmt.Sprintf("Your %s - Luxury Automotive Experience", desc),
		Body:     body,
		HTMLBody: html,
	}
}

// describeDocuments - "Quotation", "Quotation and Contract", "A, B, and C"
func describeDocuments(documentTypes []string) string {

	titled := make([]string, len(documentTypes))

	for i, t := range documentTypes {
		titled[i] = strings.Title(strings.ToLower(t))
	}

	switch len(titled) {
	case 0:
		return "Documents"
	case 1:
		return titled[0]
	case 2:
		return titled[0] + " and " + titled[1]
	default:
		return strings.Join(titled[:len(titled)-1], ", ") + ", and " + titled[len(titled)-1]
	}
}
