package service

import (
	"context"
	"time"

	"vashudhara/internal/models"
	"vashudhara/internal/repository"
)

// GatewayOrder is the handle returned by the payment gateway for a checkout
// session, echoed back to the client that opens the payment UI.
type GatewayOrder struct {
	ID       string `json:"orderId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// PaymentGateway creates checkout sessions at the external gateway. Amounts
// are integer minor units (paise).
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (GatewayOrder, error)
}

// EventPublisher hands a committed order event to the notification transport.
type EventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}

type Catalog interface {
	ListProducts() ([]models.Product, error)
	ListCategory(category string) ([]models.Product, error)
	GetProduct(id string) (models.Product, error)
	CreateProduct(p models.Product) (models.Product, error)
	UpdateProduct(p models.Product) error
	DeleteProduct(id string) error
}

type Carts interface {
	UpsertCart(customerID, productID, size string, quantity int) error
	DeleteCartEntry(customerID, productID, size string) error
	ListCart(customerID string) ([]models.CartEntry, error)

	AddWish(customerID, productID string) error
	RemoveWish(customerID, productID string) error
	ListWishes(customerID string) ([]models.WishlistEntry, error)
}

type Addresses interface {
	CreateAddress(a models.Address) (models.Address, error)
	UpdateAddress(a models.Address) error
	DeleteAddress(customerID, addressID string) error
	ListAddresses(customerID string) ([]models.Address, error)
	SetDefaultAddress(customerID, addressID string) error
}

type Orders interface {
	PlaceOrder(ctx context.Context, in Placement) (models.Order, GatewayOrder, error)
	ConfirmPayment(ctx context.Context, orderID, customerID, gatewayOrderID, paymentID, signature string) error
	CancelPayment(ctx context.Context, orderID, customerID string) error
	GetOrder(orderID, customerID string) (models.Order, error)
	ListOrders(customerID string) ([]models.Order, error)

	AdminListOrders() ([]models.Order, error)
	AdminGetOrder(orderID string) (models.Order, error)
	ChangeStatus(ctx context.Context, orderID string, next models.OrderStatus) (StatusChange, error)
	AppendTracking(orderID, note string) (models.TrackingEvent, error)

	WarmCache(limit int) error
}

type Payments interface {
	CreateGatewayOrder(ctx context.Context, amountMinor int64) (GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) (bool, error)
}

type Redeems interface {
	GenerateRedeemCode() (models.RedeemCode, error)
	MarkRedeemed(code string) error
}

// Storefront is everything the HTTP delivery layer needs.
type Storefront interface {
	Catalog
	Carts
	Addresses
	Orders
	Payments
	Redeems
}

type Options struct {
	GatewaySecret  string
	Currency       string
	MailConfigured bool
	Now            func() time.Time
}

type Service struct {
	repository.OrderPostgres
	repository.CatalogPostgres
	repository.CartPostgres
	repository.AddressPostgres
	repository.RedeemPostgres
	repository.OrderCache

	gw  PaymentGateway
	pub EventPublisher
	opt Options
}

func NewService(repo *repository.Repository, gw PaymentGateway, pub EventPublisher, opt Options) *Service {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Currency == "" {
		opt.Currency = "INR"
	}
	return &Service{
		OrderPostgres:   repo.OrderPostgres,
		CatalogPostgres: repo.CatalogPostgres,
		CartPostgres:    repo.CartPostgres,
		AddressPostgres: repo.AddressPostgres,
		RedeemPostgres:  repo.RedeemPostgres,
		OrderCache:      repo.OrderCache,
		gw:              gw,
		pub:             pub,
		opt:             opt,
	}
}
