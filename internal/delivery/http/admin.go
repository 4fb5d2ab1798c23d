package http

import (
	"bytes"
	"net/http"
	"strings"

	"vashudhara/internal/invoice"
	"vashudhara/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminListOrders
// @Summary AdminListOrders
// @Description Returns every order from the dashboard cache, newest first
// @ID admin-list-orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listOrdersResponse
// @Failure 401,403,500 {object} errorResponse
// @Router /api/admin/orders [get]
func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.svc.AdminListOrders()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, listOrdersResponse{Data: orders})
}

// AdminGetOrder
// @Summary AdminGetOrder
// @ID admin-get-order
// @Security BearerAuth
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/admin/orders/{id} [get]
func (h *Handler) AdminGetOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	ord, err := h.svc.AdminGetOrder(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatus
// @Summary ChangeStatus
// @Description Applies a legal status transition and queues the buyer notification after the commit
// @ID admin-change-status
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body changeStatusRequest true "new status"
// @Success 200 {object} service.StatusChange
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/admin/orders/{id}/status [put]
func (h *Handler) ChangeStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	var req changeStatusRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.svc.ChangeStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type appendTrackingRequest struct {
	Note string `json:"status"`
}

// AppendTracking
// @Summary AppendTracking
// @Description Appends one timestamped free-text tracking event to the order
// @ID admin-append-tracking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body appendTrackingRequest true "tracking note"
// @Success 201 {object} models.TrackingEvent
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/admin/orders/{id}/tracking [post]
func (h *Handler) AppendTracking(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	var req appendTrackingRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.svc.AppendTracking(id, req.Note)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// DownloadInvoice
// @Summary DownloadInvoice
// @Description Renders the order into a printable PDF invoice
// @ID admin-download-invoice
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "order id"
// @Success 200 {file} binary
// @Failure 400,401,403,404,500 {object} errorResponse
// @Router /api/admin/orders/{id}/invoice [get]
func (h *Handler) DownloadInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	ord, err := h.svc.AdminGetOrder(id)
	if err != nil {
		respondErr(c, err)
		return
	}

	var buf bytes.Buffer
	if err := invoice.Render(&buf, h.shop, ord); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "invoice render failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+invoice.Filename(ord)+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// CreateProduct
// @Summary CreateProduct
// @ID admin-create-product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body models.Product true "product"
// @Success 201 {object} models.Product
// @Failure 400,401,403,409 {object} errorResponse
// @Router /api/admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.BindJSON(&p); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateProduct(p)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct
// @Summary UpdateProduct
// @ID admin-update-product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param input body models.Product true "product"
// @Success 200 {object} statusResponse
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/admin/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := c.BindJSON(&p); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ProductID = strings.TrimSpace(c.Param("id"))

	if err := h.svc.UpdateProduct(p); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// DeleteProduct
// @Summary DeleteProduct
// @ID admin-delete-product
// @Security BearerAuth
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} statusResponse
// @Failure 401,403,404 {object} errorResponse
// @Router /api/admin/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(strings.TrimSpace(c.Param("id"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// GenerateRedeemCode
// @Summary GenerateRedeemCode
// @Description Generates a unique 6-character redeem code, retrying on collision
// @ID admin-generate-redeem-code
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.RedeemCode
// @Failure 401,403,500 {object} errorResponse
// @Router /api/admin/redeem-codes [post]
func (h *Handler) GenerateRedeemCode(c *gin.Context) {
	code, err := h.svc.GenerateRedeemCode()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, code)
}

// MarkRedeemed
// @Summary MarkRedeemed
// @ID admin-mark-redeemed
// @Security BearerAuth
// @Produce json
// @Param code path string true "redeem code"
// @Success 200 {object} statusResponse
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/admin/redeem-codes/{code}/redeem [post]
func (h *Handler) MarkRedeemed(c *gin.Context) {
	if err := h.svc.MarkRedeemed(strings.TrimSpace(c.Param("code"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}
