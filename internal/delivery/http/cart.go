package http

import (
	"net/http"
	"strings"

	"vashudhara/internal/models"

	"github.com/gin-gonic/gin"
)

type upsertCartRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type listCartResponse struct {
	Data []models.CartEntry `json:"data"`
}

type listWishlistResponse struct {
	Data []models.WishlistEntry `json:"data"`
}

// ListCart
// @Summary ListCart
// @ID list-cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listCartResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/cart [get]
func (h *Handler) ListCart(c *gin.Context) {
	p, _ := principalFrom(c)
	entries, err := h.svc.ListCart(p.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, listCartResponse{Data: entries})
}

// UpsertCart
// @Summary UpsertCart
// @Description Writes a cart line; quantity <= 0 removes it
// @ID upsert-cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body upsertCartRequest true "cart line"
// @Success 200 {object} statusResponse
// @Failure 400,401 {object} errorResponse
// @Router /api/cart [put]
func (h *Handler) UpsertCart(c *gin.Context) {
	p, _ := principalFrom(c)

	var req upsertCartRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpsertCart(p.ID, req.ProductID, req.Size, req.Quantity); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// DeleteCartEntry
// @Summary DeleteCartEntry
// @ID delete-cart-entry
// @Security BearerAuth
// @Produce json
// @Param productId path string true "product id"
// @Param size query string false "size"
// @Success 200 {object} statusResponse
// @Failure 400,401 {object} errorResponse
// @Router /api/cart/{productId} [delete]
func (h *Handler) DeleteCartEntry(c *gin.Context) {
	p, _ := principalFrom(c)
	productID := strings.TrimSpace(c.Param("productId"))

	if err := h.svc.DeleteCartEntry(p.ID, productID, c.Query("size")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// ListWishes
// @Summary ListWishes
// @ID list-wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listWishlistResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/wishlist [get]
func (h *Handler) ListWishes(c *gin.Context) {
	p, _ := principalFrom(c)
	entries, err := h.svc.ListWishes(p.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, listWishlistResponse{Data: entries})
}

// AddWish
// @Summary AddWish
// @ID add-wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "product id"
// @Success 200 {object} statusResponse
// @Failure 400,401 {object} errorResponse
// @Router /api/wishlist/{productId} [put]
func (h *Handler) AddWish(c *gin.Context) {
	p, _ := principalFrom(c)
	if err := h.svc.AddWish(p.ID, strings.TrimSpace(c.Param("productId"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// RemoveWish
// @Summary RemoveWish
// @ID remove-wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "product id"
// @Success 200 {object} statusResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/wishlist/{productId} [delete]
func (h *Handler) RemoveWish(c *gin.Context) {
	p, _ := principalFrom(c)
	if err := h.svc.RemoveWish(p.ID, strings.TrimSpace(c.Param("productId"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}
