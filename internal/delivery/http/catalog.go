package http

import (
	"net/http"
	"strings"

	"vashudhara/internal/models"

	"github.com/gin-gonic/gin"
)

type listProductsResponse struct {
	Data []models.Product `json:"data"`
}

// ListProducts
// @Summary ListProducts
// @Description Returns the whole catalog
// @ID list-products
// @Produce json
// @Success 200 {object} listProductsResponse
// @Failure 500 {object} errorResponse
// @Router /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, listProductsResponse{Data: products})
}

// GetProduct
// @Summary GetProduct
// @Description Returns one product by id
// @ID get-product
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} models.Product
// @Failure 400,404 {object} errorResponse
// @Router /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing product id")
		return
	}

	p, err := h.svc.GetProduct(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListCategory
// @Summary ListCategory
// @Description Returns the products of one category
// @ID list-category
// @Produce json
// @Param category path string true "category tag"
// @Success 200 {object} listProductsResponse
// @Failure 400,500 {object} errorResponse
// @Router /api/collections/{category} [get]
func (h *Handler) ListCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))

	products, err := h.svc.ListCategory(category)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, listProductsResponse{Data: products})
}
