package reports

import (
	"bytes"
	"fmt"

	"github.com/ashurstore/commerce-api/internal/orders"
	"github.com/jung-kurt/gofpdf"
)

// Build renders an order report PDF in memory.
func Build(title string, dateLabel string, list []orders.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Report Date: %s", dateLabel), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, o := range list {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 8, fmt.Sprintf("Order %d:", i+1), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)

		line := func(s string) {
			pdf.CellFormat(0, 6, s, "", 1, "L", false, 0, "")
		}
		line(fmt.Sprintf("Order ID: %s", o.OrderID))
		line(fmt.Sprintf("Status: %s", o.Status))
		line(fmt.Sprintf("Customer Name: %s", o.Customer.Name))
		line(fmt.Sprintf("Customer Email: %s", o.Customer.Email))
		line(fmt.Sprintf("Customer Phone: %s", o.Customer.Phone))
		line(fmt.Sprintf("Customer Address: %s", o.Customer.Address))
		line(fmt.Sprintf("Customer Country, City: %s, %s", o.Customer.Country, o.Customer.City))
		line(fmt.Sprintf("Order Date: %s", o.CreatedAt.Format("Mon Jan 2 2006")))
		line("Items:")
		for _, l := range o.Lines {
			line(fmt.Sprintf("  - %s (%s): %d x $%.2f", l.ReferenceID, l.Type, l.Quantity, l.Price))
		}
		line(fmt.Sprintf("Total Amount: $%.2f", o.TotalAmount))
		if o.AdminComment != "" {
			line(fmt.Sprintf("Admin Comment: %s", o.AdminComment))
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
