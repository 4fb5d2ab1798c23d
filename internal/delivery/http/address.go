package http

import (
	"net/http"
	"strings"

	"vashudhara/internal/models"

	"github.com/gin-gonic/gin"
)

type listAddressesResponse struct {
	Data []models.Address `json:"data"`
}

// ListAddresses
// @Summary ListAddresses
// @ID list-addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listAddressesResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/addresses [get]
func (h *Handler) ListAddresses(c *gin.Context) {
	p, _ := principalFrom(c)
	addrs, err := h.svc.ListAddresses(p.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, listAddressesResponse{Data: addrs})
}

// CreateAddress
// @Summary CreateAddress
// @ID create-address
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body models.Address true "address"
// @Success 201 {object} models.Address
// @Failure 400,401 {object} errorResponse
// @Router /api/addresses [post]
func (h *Handler) CreateAddress(c *gin.Context) {
	p, _ := principalFrom(c)

	var a models.Address
	if err := c.BindJSON(&a); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	a.CustomerID = p.ID

	created, err := h.svc.CreateAddress(a)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAddress
// @Summary UpdateAddress
// @ID update-address
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "address id"
// @Param input body models.Address true "address"
// @Success 200 {object} statusResponse
// @Failure 400,401,404 {object} errorResponse
// @Router /api/addresses/{id} [put]
func (h *Handler) UpdateAddress(c *gin.Context) {
	p, _ := principalFrom(c)

	var a models.Address
	if err := c.BindJSON(&a); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	a.AddressID = strings.TrimSpace(c.Param("id"))
	a.CustomerID = p.ID

	if err := h.svc.UpdateAddress(a); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// DeleteAddress
// @Summary DeleteAddress
// @ID delete-address
// @Security BearerAuth
// @Produce json
// @Param id path string true "address id"
// @Success 200 {object} statusResponse
// @Failure 401,404 {object} errorResponse
// @Router /api/addresses/{id} [delete]
func (h *Handler) DeleteAddress(c *gin.Context) {
	p, _ := principalFrom(c)
	if err := h.svc.DeleteAddress(p.ID, strings.TrimSpace(c.Param("id"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// SetDefaultAddress
// @Summary SetDefaultAddress
// @Description Makes the address the single default for the caller
// @ID set-default-address
// @Security BearerAuth
// @Produce json
// @Param id path string true "address id"
// @Success 200 {object} statusResponse
// @Failure 401,404 {object} errorResponse
// @Router /api/addresses/{id}/default [post]
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	p, _ := principalFrom(c)
	if err := h.svc.SetDefaultAddress(p.ID, strings.TrimSpace(c.Param("id"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}
