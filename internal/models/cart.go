package models

import (
	"time"
)

// CartEntry is one (customer, product, size) line. Quantity is always >= 1;
// an upsert carrying quantity <= 0 deletes the line instead.
type CartEntry struct {
	ID         uint      `json:"-"           gorm:"primary_key;auto_increment"`
	CustomerID string    `json:"customer_id" validate:"required" gorm:"index;unique_index:idx_cart_line"`
	ProductID  string    `json:"product_id"  validate:"required" gorm:"unique_index:idx_cart_line"`
	Size       string    `json:"size"        gorm:"unique_index:idx_cart_line"`
	Title      string    `json:"title"       validate:"required"`
	Image      string    `json:"image"`
	Brand      string    `json:"brand"`
	Price      float64   `json:"price"       validate:"gt=0"`
	Quantity   int       `json:"quantity"    validate:"gte=1"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WishlistEntry struct {
	ID         uint      `json:"-"           gorm:"primary_key;auto_increment"`
	CustomerID string    `json:"customer_id" validate:"required" gorm:"index;unique_index:idx_wish_line"`
	ProductID  string    `json:"product_id"  validate:"required" gorm:"unique_index:idx_wish_line"`
	Title      string    `json:"title"       validate:"required"`
	Image      string    `json:"image"`
	Brand      string    `json:"brand"`
	Price      float64   `json:"price"       validate:"gt=0"`
	AddedAt    time.Time `json:"added_at"`
}
