package repository

import (
	"time"

	"vashudhara/internal/models"
	"vashudhara/internal/repository/cache"
	"vashudhara/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

type OrderPostgres interface {
	Create(ord models.Order) error
	Get(id string) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByCustomer(customerID string) ([]models.Order, error)
	// UpdateStatus moves the order from exactly `from` to `to`; it reports a
	// conflict when the stored status no longer equals `from`.
	UpdateStatus(id string, from, to models.OrderStatus, failureReason string) error
	// AttachPaymentProof stores the gateway correlation triplet once and
	// moves the order to Payment Successful. Re-attaching the identical
	// triplet is a no-op; a different triplet is a conflict.
	AttachPaymentProof(id, gatewayOrderID, paymentID, signature string) error
	AppendTracking(id, note string, at time.Time) (models.TrackingEvent, error)
}

type CatalogPostgres interface {
	Create(p models.Product) error
	Update(p models.Product) error
	Delete(id string) error
	Get(id string) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
}

type CartPostgres interface {
	Upsert(e models.CartEntry) error
	Delete(customerID, productID, size string) error
	List(customerID string) ([]models.CartEntry, error)

	AddWish(e models.WishlistEntry) error
	RemoveWish(customerID, productID string) error
	ListWishes(customerID string) ([]models.WishlistEntry, error)
}

type AddressPostgres interface {
	Create(a models.Address) error
	Update(a models.Address) error
	Delete(customerID, addressID string) error
	List(customerID string) ([]models.Address, error)
	// SetDefault clears every default flag for the customer and sets it on
	// addressID inside one transaction.
	SetDefault(customerID, addressID string) error
}

type RedeemPostgres interface {
	Create(code models.RedeemCode) error
	Get(code string) (models.RedeemCode, error)
	MarkRedeemed(code string) error
}

type OrderCache interface {
	PutOrder(id string, order models.Order)
	GetOrder(id string) (models.Order, error)
	GetAllOrders() ([]models.Order, error)
	DeleteOrder(id string)
}

type Repository struct {
	OrderPostgres
	CatalogPostgres
	CartPostgres
	AddressPostgres
	RedeemPostgres
	OrderCache
}

func NewRepository(db *gorm.DB) *Repository {
	return NewRepositoryWithCache(db, cache.NewCache())
}

// NewRepositoryWithCache lets the caller pick the KV backing the order
// cache, e.g. the sharded implementation for larger deployments.
func NewRepositoryWithCache(db *gorm.DB, kv cache.KV) *Repository {
	return &Repository{
		OrderPostgres:   postgres.NewOrderPostgres(db),
		CatalogPostgres: postgres.NewCatalogPostgres(db),
		CartPostgres:    postgres.NewCartPostgres(db),
		AddressPostgres: postgres.NewAddressPostgres(db),
		RedeemPostgres:  postgres.NewRedeemPostgres(db),
		OrderCache:      cache.NewOrderCache(kv),
	}
}
