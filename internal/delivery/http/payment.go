package http

import (
	"errors"
	"net/http"

	"vashudhara/internal/service"

	"github.com/gin-gonic/gin"
)

type createPaymentOrderRequest struct {
	Amount int64 `json:"amount"`
}

type createPaymentOrderError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// CreatePaymentOrder
// @Summary CreatePaymentOrder
// @Description Opens a gateway checkout session for the given amount in integer minor units
// @ID create-payment-order
// @Accept json
// @Produce json
// @Param input body createPaymentOrderRequest true "amount in minor units"
// @Success 200 {object} service.GatewayOrder
// @Failure 400,502 {object} createPaymentOrderError
// @Router /api/payment/order [post]
func (h *Handler) CreatePaymentOrder(c *gin.Context) {
	var req createPaymentOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, createPaymentOrderError{
			Error: "invalid request body", Details: err.Error(),
		})
		return
	}

	gw, err := h.svc.CreateGatewayOrder(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, createPaymentOrderError{
				Error: "invalid amount", Details: err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, createPaymentOrderError{
			Error: "gateway order creation failed", Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gw)
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type verifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VerifyPayment
// @Summary VerifyPayment
// @Description Recomputes the gateway HMAC server-side and reports whether the supplied signature is authentic
// @ID verify-payment
// @Accept json
// @Produce json
// @Param input body verifyPaymentRequest true "gateway correlation fields"
// @Success 200 {object} verifyPaymentResponse
// @Failure 400 {object} verifyPaymentResponse
// @Failure 500 {object} verifyPaymentResponse
// @Router /api/payment/verify [post]
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, verifyPaymentResponse{
			Success: false, Message: "invalid request body",
		})
		return
	}

	ok, err := h.svc.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, verifyPaymentResponse{
				Success: false, Message: "missing payment fields",
			})
			return
		}
		// Never leak the expected signature.
		c.JSON(http.StatusInternalServerError, verifyPaymentResponse{
			Success: false, Error: "verification failed",
		})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, verifyPaymentResponse{
			Success: false, Message: "signature mismatch",
		})
		return
	}

	c.JSON(http.StatusOK, verifyPaymentResponse{
		Success: true, Message: "payment verified",
	})
}
