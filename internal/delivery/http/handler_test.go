package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	httpdelivery "vashudhara/internal/delivery/http"
	"vashudhara/internal/invoice"
	"vashudhara/internal/models"
	"vashudhara/internal/service"
)

const testSecret = "unit-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type svcStub struct {
	listProducts func() ([]models.Product, error)
	getProduct   func(id string) (models.Product, error)

	placeOrder    func(in service.Placement) (models.Order, service.GatewayOrder, error)
	listOrders    func(customerID string) ([]models.Order, error)
	getOrder      func(orderID, customerID string) (models.Order, error)
	confirm       func(orderID, customerID, gwOrderID, paymentID, sig string) error
	cancel        func(orderID, customerID string) error
	adminList     func() ([]models.Order, error)
	adminGet      func(orderID string) (models.Order, error)
	changeStatus  func(orderID string, next models.OrderStatus) (service.StatusChange, error)
	verify        func(gwOrderID, paymentID, sig string) (bool, error)
	createGateway func(amountMinor int64) (service.GatewayOrder, error)
}

var _ service.Storefront = (*svcStub)(nil)

func (s *svcStub) ListProducts() ([]models.Product, error) {
	if s.listProducts != nil {
		return s.listProducts()
	}
	return nil, nil
}
func (s *svcStub) ListCategory(string) ([]models.Product, error) { return nil, nil }
func (s *svcStub) GetProduct(id string) (models.Product, error) {
	if s.getProduct != nil {
		return s.getProduct(id)
	}
	return models.Product{}, service.ErrNotFound
}
func (s *svcStub) CreateProduct(p models.Product) (models.Product, error) { return p, nil }
func (s *svcStub) UpdateProduct(models.Product) error                     { return nil }
func (s *svcStub) DeleteProduct(string) error                             { return nil }

func (s *svcStub) UpsertCart(string, string, string, int) error        { return nil }
func (s *svcStub) DeleteCartEntry(string, string, string) error        { return nil }
func (s *svcStub) ListCart(string) ([]models.CartEntry, error)         { return nil, nil }
func (s *svcStub) AddWish(string, string) error                        { return nil }
func (s *svcStub) RemoveWish(string, string) error                     { return nil }
func (s *svcStub) ListWishes(string) ([]models.WishlistEntry, error)   { return nil, nil }

func (s *svcStub) CreateAddress(a models.Address) (models.Address, error) { return a, nil }
func (s *svcStub) UpdateAddress(models.Address) error                     { return nil }
func (s *svcStub) DeleteAddress(string, string) error                     { return nil }
func (s *svcStub) ListAddresses(string) ([]models.Address, error)         { return nil, nil }
func (s *svcStub) SetDefaultAddress(string, string) error                 { return nil }

func (s *svcStub) PlaceOrder(_ context.Context, in service.Placement) (models.Order, service.GatewayOrder, error) {
	if s.placeOrder != nil {
		return s.placeOrder(in)
	}
	return models.Order{}, service.GatewayOrder{}, fmt.Errorf("not implemented")
}
func (s *svcStub) ConfirmPayment(_ context.Context, orderID, customerID, gwOrderID, paymentID, sig string) error {
	if s.confirm != nil {
		return s.confirm(orderID, customerID, gwOrderID, paymentID, sig)
	}
	return nil
}
func (s *svcStub) CancelPayment(_ context.Context, orderID, customerID string) error {
	if s.cancel != nil {
		return s.cancel(orderID, customerID)
	}
	return nil
}
func (s *svcStub) GetOrder(orderID, customerID string) (models.Order, error) {
	if s.getOrder != nil {
		return s.getOrder(orderID, customerID)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) ListOrders(customerID string) ([]models.Order, error) {
	if s.listOrders != nil {
		return s.listOrders(customerID)
	}
	return nil, nil
}
func (s *svcStub) AdminListOrders() ([]models.Order, error) {
	if s.adminList != nil {
		return s.adminList()
	}
	return nil, nil
}
func (s *svcStub) AdminGetOrder(orderID string) (models.Order, error) {
	if s.adminGet != nil {
		return s.adminGet(orderID)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) ChangeStatus(_ context.Context, orderID string, next models.OrderStatus) (service.StatusChange, error) {
	if s.changeStatus != nil {
		return s.changeStatus(orderID, next)
	}
	return service.StatusChange{}, nil
}
func (s *svcStub) AppendTracking(string, string) (models.TrackingEvent, error) {
	return models.TrackingEvent{}, nil
}
func (s *svcStub) WarmCache(int) error { return nil }

func (s *svcStub) CreateGatewayOrder(_ context.Context, amountMinor int64) (service.GatewayOrder, error) {
	if s.createGateway != nil {
		return s.createGateway(amountMinor)
	}
	return service.GatewayOrder{ID: "order_gw_1", Currency: "INR", Amount: amountMinor}, nil
}
func (s *svcStub) VerifySignature(gwOrderID, paymentID, sig string) (bool, error) {
	if s.verify != nil {
		return s.verify(gwOrderID, paymentID, sig)
	}
	return false, nil
}

func (s *svcStub) GenerateRedeemCode() (models.RedeemCode, error) {
	return models.RedeemCode{Code: "AB12CD"}, nil
}
func (s *svcStub) MarkRedeemed(string) error { return nil }

func newTestHandler(s service.Storefront) *gin.Engine {
	h := httpdelivery.NewHandler(s, testSecret, invoice.ShopIdentity{
		Name:    "Vashudhara",
		Address: "12 MG Road, Hyderabad",
	})
	return h.InitRoutes()
}

func bearerToken(t *testing.T, sub, name, email string, admin bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"name":  name,
		"email": email,
		"admin": admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, r http.Handler, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_NoRoute(t *testing.T) {
	r := newTestHandler(&svcStub{})

	w := doJSON(t, r, http.MethodGet, "/api/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyPayment_OK(t *testing.T) {
	r := newTestHandler(&svcStub{
		verify: func(o, p, s string) (bool, error) { return true, nil },
	})

	w := doJSON(t, r, http.MethodPost, "/api/payment/verify", "", gin.H{
		"razorpay_order_id":   "o1",
		"razorpay_payment_id": "p1",
		"razorpay_signature":  "abc",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Contains(t, w.Body.String(), "payment verified")
}

func TestVerifyPayment_Mismatch_400(t *testing.T) {
	r := newTestHandler(&svcStub{
		verify: func(o, p, s string) (bool, error) { return false, nil },
	})

	w := doJSON(t, r, http.MethodPost, "/api/payment/verify", "", gin.H{
		"razorpay_order_id":   "o1",
		"razorpay_payment_id": "p1",
		"razorpay_signature":  "wrong",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"success":false`)
	require.Contains(t, w.Body.String(), "signature mismatch")
}

func TestVerifyPayment_MissingFields_400(t *testing.T) {
	r := newTestHandler(&svcStub{
		verify: func(o, p, s string) (bool, error) {
			return false, fmt.Errorf("%w: missing payment fields", service.ErrValidation)
		},
	})

	w := doJSON(t, r, http.MethodPost, "/api/payment/verify", "", gin.H{
		"razorpay_order_id": "o1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "missing payment fields")
}

func TestVerifyPayment_InternalError_NeverLeaksSignature(t *testing.T) {
	r := newTestHandler(&svcStub{
		verify: func(o, p, s string) (bool, error) { return false, fmt.Errorf("hmac write: boom") },
	})

	w := doJSON(t, r, http.MethodPost, "/api/payment/verify", "", gin.H{
		"razorpay_order_id":   "o1",
		"razorpay_payment_id": "p1",
		"razorpay_signature":  "abc",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "verification failed")
	require.NotContains(t, w.Body.String(), "boom")
}

func TestPaymentEndpoints_MethodNotAllowed(t *testing.T) {
	r := newTestHandler(&svcStub{})

	for _, path := range []string{"/api/payment/order", "/api/payment/verify"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		require.Equal(t, http.MethodPost, w.Header().Get("Allow"), path)
	}
}

func TestOrders_RequireAuth(t *testing.T) {
	r := newTestHandler(&svcStub{})

	w := doJSON(t, r, http.MethodGet, "/api/orders", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders", "Bearer not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_RejectsNonAdmin(t *testing.T) {
	r := newTestHandler(&svcStub{})

	auth := bearerToken(t, "cust-1", "Ravi Kumar", "ravi@example.com", false)
	w := doJSON(t, r, http.MethodGet, "/api/admin/orders", auth, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlaceOrder_Created_CarriesPrincipal(t *testing.T) {
	var got service.Placement
	r := newTestHandler(&svcStub{
		placeOrder: func(in service.Placement) (models.Order, service.GatewayOrder, error) {
			got = in
			return models.Order{OrderID: "o-1", Status: models.StatusPaymentPending},
				service.GatewayOrder{ID: "order_gw_1", Currency: "INR", Amount: 100000}, nil
		},
	})

	auth := bearerToken(t, "cust-1", "Ravi Kumar", "ravi@example.com", false)
	w := doJSON(t, r, http.MethodPost, "/api/orders", auth, gin.H{
		"product_id": "p1",
		"quantity":   2,
		"shipping": gin.H{
			"full_name": "Ravi Kumar",
			"mobile":    "9876543210",
			"pincode":   "500001",
			"state":     "Telangana",
			"district":  "Hyderabad",
			"village":   "Begumpet",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"orderId":"order_gw_1"`)

	require.Equal(t, "cust-1", got.CustomerID)
	require.Equal(t, "Ravi Kumar", got.CustomerName)
	require.Equal(t, "ravi@example.com", got.CustomerEmail)
	require.Equal(t, 2, got.Quantity)
	require.Equal(t, "500001", got.Shipping.Pincode)
}

func TestChangeStatus_InvalidTransition_400(t *testing.T) {
	r := newTestHandler(&svcStub{
		changeStatus: func(id string, next models.OrderStatus) (service.StatusChange, error) {
			return service.StatusChange{}, fmt.Errorf("%w: Delivered -> Processing", service.ErrInvalidTransition)
		},
	})

	auth := bearerToken(t, "admin-1", "Admin", "admin@example.com", true)
	w := doJSON(t, r, http.MethodPut, "/api/admin/orders/o-1/status", auth, gin.H{"status": "Processing"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "illegal status transition")
}

func TestChangeStatus_OK_ReportsWarning(t *testing.T) {
	r := newTestHandler(&svcStub{
		changeStatus: func(id string, next models.OrderStatus) (service.StatusChange, error) {
			return service.StatusChange{
				Order:       models.Order{OrderID: id, Status: next},
				EmailQueued: false,
				Warning:     "mail delivery not configured, no notification sent",
			}, nil
		},
	})

	auth := bearerToken(t, "admin-1", "Admin", "admin@example.com", true)
	w := doJSON(t, r, http.MethodPut, "/api/admin/orders/o-1/status", auth, gin.H{"status": "Processing"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"email_queued":false`)
	require.Contains(t, w.Body.String(), "not configured")
}

func TestDownloadInvoice_PDF(t *testing.T) {
	ship := models.ShippingSnapshot{
		FullName: "Ravi Kumar", Mobile: "9876543210", Pincode: "500001",
		State: "Telangana", District: "Hyderabad", Village: "Begumpet",
	}
	r := newTestHandler(&svcStub{
		adminGet: func(id string) (models.Order, error) {
			return models.Order{
				OrderID:      id,
				CustomerName: "Ravi Kumar",
				ProductTitle: "Silk Saree",
				UnitPrice:    500,
				Quantity:     2,
				Total:        1000,
				Status:       models.StatusPaymentSuccessful,
				OrderedAt:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
				Shipping:     &ship,
			}, nil
		},
	})

	auth := bearerToken(t, "admin-1", "Admin", "admin@example.com", true)
	w := doJSON(t, r, http.MethodGet, "/api/admin/orders/o-1/invoice", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "Invoice_Ravi_Kumar_o-1.pdf")
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestListOrders_OK(t *testing.T) {
	r := newTestHandler(&svcStub{
		listOrders: func(customerID string) ([]models.Order, error) {
			return []models.Order{{OrderID: "o-1", CustomerID: customerID}}, nil
		},
	})

	auth := bearerToken(t, "cust-1", "Ravi Kumar", "ravi@example.com", false)
	w := doJSON(t, r, http.MethodGet, "/api/orders", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"data":[`)
	require.Contains(t, w.Body.String(), `"order_id":"o-1"`)
}

func TestGetOrder_Forbidden_403(t *testing.T) {
	r := newTestHandler(&svcStub{
		getOrder: func(orderID, customerID string) (models.Order, error) {
			return models.Order{}, service.ErrForbidden
		},
	})

	auth := bearerToken(t, "cust-2", "Other", "other@example.com", false)
	w := doJSON(t, r, http.MethodGet, "/api/orders/o-1", auth, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
