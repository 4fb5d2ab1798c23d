// Package invoice renders an order into a printable PDF. Rendering is a pure
// function of the order record already in memory.
package invoice

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"vashudhara/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ShopIdentity is the seller block printed at the top of every invoice.
type ShopIdentity struct {
	Name    string
	Address string
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Filename builds the download name: Invoice_<sanitized customer name>_<order id>.pdf
func Filename(ord models.Order) string {
	name := unsafeName.ReplaceAllString(strings.TrimSpace(ord.CustomerName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "customer"
	}
	return fmt.Sprintf("Invoice_%s_%s.pdf", name, ord.OrderID)
}

// Render writes the invoice PDF for ord to w.
func Render(w io.Writer, shop ShopIdentity, ord models.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, shop.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if shop.Address != "" {
		pdf.CellFormat(0, 5, shop.Address, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	kv := func(k, v string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 5, k, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, v, "", 1, "L", false, 0, "")
	}

	kv("Order ID:", ord.OrderID)
	kv("Order date:", ord.OrderedAt.Format("02 Jan 2006"))
	kv("Payment status:", string(ord.Status))
	if ord.RazorpayOrderID != "" {
		kv("Gateway order:", ord.RazorpayOrderID)
	}
	if ord.RazorpayPaymentID != "" {
		kv("Gateway payment:", ord.RazorpayPaymentID)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, "Bill to", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, ord.CustomerName, "", 1, "L", false, 0, "")
	if ord.Shipping != nil {
		pdf.CellFormat(0, 5, ord.Shipping.Flat(), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "Mobile: "+ord.Shipping.Mobile, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Single product line.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", false, 0, "")

	title := ord.ProductTitle
	if ord.Size != "" {
		title += " (size " + ord.Size + ")"
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(90, 7, title, "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%d", ord.Quantity), "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", ord.UnitPrice), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", ord.Total), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(145, 7, "Grand total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", ord.Total), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, "This is a computer generated invoice and does not require a signature.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "For questions about this order, reply to the order confirmation email.", "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
