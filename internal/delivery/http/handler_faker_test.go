package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"vashudhara/internal/models"
)

func fakeProduct(f *gofakeit.Faker) models.Product {
	return models.Product{
		ProductID: f.UUID(),
		Title:     f.ProductName(),
		Price:     f.Price(100, 5000),
		Brand:     f.Company(),
		Image:     f.URL(),
		Category:  f.RandomString([]string{"sarees", "jewellery", "handlooms"}),
		Sizes:     f.RandomString([]string{"", "S,M,L", "Free Size"}),
		CreatedAt: time.Now().UTC(),
	}
}

func fakeAdminOrder(f *gofakeit.Faker) models.Order {
	ship := models.ShippingSnapshot{
		FullName: f.Name(),
		Mobile:   f.Phone(),
		Pincode:  f.DigitN(6),
		State:    f.State(),
		District: f.City(),
		Village:  f.Street(),
	}
	qty := int(f.Number(1, 4))
	price := f.Price(200, 3000)
	return models.Order{
		OrderID:       f.UUID(),
		CustomerID:    f.Username(),
		CustomerName:  ship.FullName,
		CustomerEmail: f.Email(),
		ProductID:     f.UUID(),
		ProductTitle:  f.ProductName(),
		ProductBrand:  f.Company(),
		UnitPrice:     price,
		Quantity:      qty,
		Total:         price * float64(qty),
		Status:        models.StatusPaymentSuccessful,
		OrderedAt:     time.Now().UTC(),
		Shipping:      &ship,
	}
}

func Test_ListProducts_Many(t *testing.T) {
	f := gofakeit.New(42)
	var products []models.Product
	for i := 0; i < 20; i++ {
		products = append(products, fakeProduct(f))
	}

	r := newTestHandler(&svcStub{
		listProducts: func() ([]models.Product, error) { return products, nil },
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, len(products))
}

func Test_AdminListOrders_Many(t *testing.T) {
	f := gofakeit.New(7)
	var orders []models.Order
	for i := 0; i < 15; i++ {
		orders = append(orders, fakeAdminOrder(f))
	}

	r := newTestHandler(&svcStub{
		adminList: func() ([]models.Order, error) { return orders, nil },
	})

	auth := bearerToken(t, "admin-1", "Admin", "admin@example.com", true)
	w := doJSON(t, r, http.MethodGet, "/api/admin/orders", auth, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, len(orders))
}
