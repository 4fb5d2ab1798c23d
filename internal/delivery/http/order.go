package http

import (
	"net/http"
	"strings"

	"vashudhara/internal/models"
	"vashudhara/internal/service"

	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	ProductID     string                  `json:"product_id"`
	Quantity      int                     `json:"quantity"`
	Size          string                  `json:"size"`
	PaymentMethod string                  `json:"payment_method"`
	Shipping      models.ShippingSnapshot `json:"shipping"`
}

type placeOrderResponse struct {
	Order   models.Order         `json:"order"`
	Gateway service.GatewayOrder `json:"gateway"`
}

type listOrdersResponse struct {
	Data []models.Order `json:"data"`
}

// PlaceOrder
// @Summary PlaceOrder
// @Description Creates an order in Payment Pending state and opens a gateway checkout session for it
// @ID place-order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body placeOrderRequest true "product selection and shipping address"
// @Success 201 {object} placeOrderResponse
// @Failure 400,401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	p, _ := principalFrom(c)

	var req placeOrderRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ord, gw, err := h.svc.PlaceOrder(c.Request.Context(), service.Placement{
		CustomerID:    p.ID,
		CustomerName:  p.Name,
		CustomerEmail: p.Email,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Size:          req.Size,
		PaymentMethod: req.PaymentMethod,
		Shipping:      req.Shipping,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, placeOrderResponse{Order: ord, Gateway: gw})
}

type paymentCallbackRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// PaymentCallback
// @Summary PaymentCallback
// @Description Gateway success callback: verifies the signature and marks the order Payment Successful
// @ID order-payment-callback
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body paymentCallbackRequest true "gateway correlation fields"
// @Success 200 {object} statusResponse
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/orders/{id}/payment/callback [post]
func (h *Handler) PaymentCallback(c *gin.Context) {
	p, _ := principalFrom(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	var req paymentCallbackRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.ConfirmPayment(c.Request.Context(), id, p.ID,
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "payment recorded"})
}

// PaymentCancel
// @Summary PaymentCancel
// @Description Records the buyer dismissing the gateway checkout UI
// @ID order-payment-cancel
// @Security BearerAuth
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} statusResponse
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/orders/{id}/payment/cancel [post]
func (h *Handler) PaymentCancel(c *gin.Context) {
	p, _ := principalFrom(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	if err := h.svc.CancelPayment(c.Request.Context(), id, p.ID); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "payment cancelled"})
}

// GetOrder
// @Summary GetOrder
// @Description Returns one of the caller's own orders
// @ID get-order
// @Security BearerAuth
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	p, _ := principalFrom(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	ord, err := h.svc.GetOrder(id, p.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, ord)
}

// ListOrders
// @Summary ListOrders
// @Description Returns the caller's orders, newest first
// @ID list-orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listOrdersResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	p, _ := principalFrom(c)

	orders, err := h.svc.ListOrders(p.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, listOrdersResponse{Data: orders})
}
