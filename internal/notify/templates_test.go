package notify

import (
	"strings"
	"testing"

	"github.com/ashurstore/commerce-api/internal/orders"
)

func TestBuildVerificationEmail_EscapesCustomerName(t *testing.T) {
	o := orders.Order{
		OrderID: "order-1",
		Customer: orders.CustomerDetails{
			Name:  `<script>alert("x")</script>`,
			Email: "sara@example.com",
		},
		OTPCode: "123456",
	}

	msg := BuildVerificationEmail(o)
	if msg.To != "sara@example.com" {
		t.Fatalf("unexpected recipient: %s", msg.To)
	}
	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Fatalf("customer name not escaped: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "&lt;script&gt;") {
		t.Fatalf("escaped name missing from body: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "123456") {
		t.Fatalf("otp code missing from body: %s", msg.HTMLBody)
	}
}

func TestBuildAdminOrderEmail_EscapesCustomerFields(t *testing.T) {
	o := orders.Order{
		OrderID: "order-1",
		Customer: orders.CustomerDetails{
			Name:    "Sara Oda",
			Email:   "sara@example.com",
			Phone:   "555-0100",
			Address: `12 <b>Main</b> St`,
			City:    "Basel",
			Country: "CH",
			Notes:   `leave at door & ring <img src=x onerror=alert(1)>`,
		},
		Lines: []orders.Line{
			{ReferenceID: "prod-1", Type: "Product", Quantity: 2, Price: 9.50},
		},
		TotalAmount: 19.00,
	}

	msg := BuildAdminOrderEmail(o, "admin@example.com")
	if msg.To != "admin@example.com" {
		t.Fatalf("unexpected recipient: %s", msg.To)
	}
	if strings.Contains(msg.HTMLBody, "<b>Main</b>") || strings.Contains(msg.HTMLBody, "<img") {
		t.Fatalf("customer fields not escaped: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "12 &lt;b&gt;Main&lt;/b&gt; St") {
		t.Fatalf("escaped address missing from body: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "leave at door &amp; ring") {
		t.Fatalf("escaped notes missing from body: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "$19.00") {
		t.Fatalf("total missing from body: %s", msg.HTMLBody)
	}
}
