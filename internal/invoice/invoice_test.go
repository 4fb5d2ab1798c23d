package invoice_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vashudhara/internal/invoice"
	"vashudhara/internal/models"
)

func sampleOrder() models.Order {
	ship := models.ShippingSnapshot{
		FullName: "Ravi Kumar",
		Mobile:   "9876543210",
		Pincode:  "500001",
		State:    "Telangana",
		District: "Hyderabad",
		Village:  "Begumpet",
	}
	return models.Order{
		OrderID:      "o-1",
		CustomerID:   "cust-1",
		CustomerName: "Ravi Kumar",
		ProductTitle: "Silk Saree",
		UnitPrice:    500,
		Quantity:     2,
		Total:        1000,
		Status:       models.StatusPaymentSuccessful,
		OrderedAt:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Shipping:     &ship,
	}
}

func TestFilename_Sanitizes(t *testing.T) {
	ord := sampleOrder()
	require.Equal(t, "Invoice_Ravi_Kumar_o-1.pdf", invoice.Filename(ord))

	ord.CustomerName = "  Ravi / Kumar! "
	require.Equal(t, "Invoice_Ravi_Kumar_o-1.pdf", invoice.Filename(ord))

	ord.CustomerName = "!!!"
	require.Equal(t, "Invoice_customer_o-1.pdf", invoice.Filename(ord))
}

func TestRender_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	shop := invoice.ShopIdentity{Name: "Vashudhara", Address: "12 MG Road, Hyderabad"}

	require.NoError(t, invoice.Render(&buf, shop, sampleOrder()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	require.Greater(t, buf.Len(), 500)
}

func TestRender_NoShipping(t *testing.T) {
	ord := sampleOrder()
	ord.Shipping = nil

	var buf bytes.Buffer
	require.NoError(t, invoice.Render(&buf, invoice.ShopIdentity{Name: "Vashudhara"}, ord))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
