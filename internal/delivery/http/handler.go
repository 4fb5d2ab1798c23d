package http

import (
	"errors"
	"net/http"
	"strings"

	"vashudhara/internal/invoice"
	"vashudhara/internal/repository/cache"
	"vashudhara/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "vashudhara/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc       service.Storefront
	jwtSecret []byte
	shop      invoice.ShopIdentity
}

func NewHandler(s service.Storefront, jwtSecret string, shop invoice.ShopIdentity) *Handler {
	return &Handler{svc: s, jwtSecret: []byte(jwtSecret), shop: shop}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	api := router.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/collections/:category", h.ListCategory)

		api.POST("/payment/order", h.CreatePaymentOrder)
		api.POST("/payment/verify", h.VerifyPayment)

		authed := api.Group("")
		authed.Use(h.authenticated)
		{
			authed.GET("/cart", h.ListCart)
			authed.PUT("/cart", h.UpsertCart)
			authed.DELETE("/cart/:productId", h.DeleteCartEntry)

			authed.GET("/wishlist", h.ListWishes)
			authed.PUT("/wishlist/:productId", h.AddWish)
			authed.DELETE("/wishlist/:productId", h.RemoveWish)

			authed.GET("/addresses", h.ListAddresses)
			authed.POST("/addresses", h.CreateAddress)
			authed.PUT("/addresses/:id", h.UpdateAddress)
			authed.DELETE("/addresses/:id", h.DeleteAddress)
			authed.POST("/addresses/:id/default", h.SetDefaultAddress)

			authed.POST("/orders", h.PlaceOrder)
			authed.GET("/orders", h.ListOrders)
			authed.GET("/orders/:id", h.GetOrder)
			authed.POST("/orders/:id/payment/callback", h.PaymentCallback)
			authed.POST("/orders/:id/payment/cancel", h.PaymentCancel)
		}

		admin := api.Group("/admin")
		admin.Use(h.authenticated, h.adminOnly)
		{
			admin.GET("/orders", h.AdminListOrders)
			admin.GET("/orders/:id", h.AdminGetOrder)
			admin.PUT("/orders/:id/status", h.ChangeStatus)
			admin.POST("/orders/:id/tracking", h.AppendTracking)
			admin.GET("/orders/:id/invoice", h.DownloadInvoice)

			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.POST("/redeem-codes", h.GenerateRedeemCode)
			admin.POST("/redeem-codes/:code/redeem", h.MarkRedeemed)
		}
	}

	router.NoMethod(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/payment/") {
			c.Header("Allow", http.MethodPost)
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "method not allowed"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// respondErr maps service errors onto HTTP statuses.
func respondErr(c *gin.Context, err error) {
	var eh cache.ErrorHandler
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrSignatureMismatch):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		newErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflict):
		newErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPaymentInit):
		newErrorResponse(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &eh):
		newErrorResponse(c, eh.StatusCode, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
