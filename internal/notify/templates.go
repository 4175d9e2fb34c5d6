package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/ashurstore/commerce-api/internal/orders"
)

// BuildVerificationEmail is the OTP message sent to the customer right
// after placement. Customer-supplied fields are escaped before they are
// interpolated into the HTML body.
func BuildVerificationEmail(o orders.Order) Message {
	var b strings.Builder
	b.WriteString(`<div style="max-width:600px;margin:30px auto;padding:20px;font-family:Arial,sans-serif">`)
	b.WriteString("<h2>Verify your order</h2>")
	fmt.Fprintf(&b, "<p>Hello %s,</p>", html.EscapeString(o.Customer.Name))
	b.WriteString("<p>Thank you for your order. Enter the following one-time code on the site to verify it. If you did not place this order you can ignore this email.</p>")
	fmt.Fprintf(&b, `<p style="font-size:24px;letter-spacing:4px;text-align:center"><strong>%s</strong></p>`, o.OTPCode)
	b.WriteString("<p>The code is valid for 15 minutes.</p>")
	b.WriteString("</div>")

	return Message{
		To:       o.Customer.Email,
		Subject:  "Verify your order",
		HTMLBody: b.String(),
	}
}

// BuildAdminOrderEmail summarizes a freshly verified order for the shop
// admin.
func BuildAdminOrderEmail(o orders.Order, adminEmail string) Message {
	var b strings.Builder
	b.WriteString("<h2>New verified order</h2>")
	b.WriteString("<h3>Customer</h3>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(o.Customer.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(o.Customer.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(o.Customer.Phone))
	fmt.Fprintf(&b, "<p><strong>Address:</strong> %s, %s, %s</p>",
		html.EscapeString(o.Customer.Address), html.EscapeString(o.Customer.City), html.EscapeString(o.Customer.Country))
	notes := o.Customer.Notes
	if notes == "" {
		notes = "None"
	}
	fmt.Fprintf(&b, "<p><strong>Notes:</strong> %s</p>", html.EscapeString(notes))

	b.WriteString("<h3>Items</h3>")
	b.WriteString(`<table border="1" cellspacing="0" cellpadding="5"><tr><th>Item</th><th>Type</th><th>Qty</th><th>Price</th></tr>`)
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>$%.2f</td></tr>",
			html.EscapeString(line.ReferenceID), html.EscapeString(string(line.Type)), line.Quantity, line.Price)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<h3>Total: $%.2f</h3>", o.TotalAmount)
	fmt.Fprintf(&b, "<p><strong>Order ID:</strong> %s</p>", o.OrderID)
	b.WriteString("<p>Log in to the admin panel to review the order.</p>")

	return Message{
		To:       adminEmail,
		Subject:  "New verified order received",
		HTMLBody: b.String(),
	}
}

// BuildDailyReportEmail carries the end-of-day PDF to the admin.
func BuildDailyReportEmail(date string, pdf []byte, adminEmail string) Message {
	return Message{
		To:       adminEmail,
		Subject:  "Daily Order Report",
		HTMLBody: fmt.Sprintf("<p>Attached is the order report for %s.</p>", date),
		Attachments: []Attachment{
			{Name: fmt.Sprintf("orders-report-%s.pdf", date), Content: pdf},
		},
	}
}
