package models

import (
	"time"
)

type Order struct {
	OrderID       string      `json:"order_id"       validate:"required" gorm:"primary_key;unique"`
	CustomerID    string      `json:"customer_id"    validate:"required"`
	CustomerName  string      `json:"customer_name"  validate:"required"`
	CustomerEmail string      `json:"customer_email"`
	ProductID     string      `json:"product_id"     validate:"required"`
	ProductTitle  string      `json:"product_title"  validate:"required"`
	ProductImage  string      `json:"product_image"`
	ProductBrand  string      `json:"product_brand"`
	UnitPrice     float64     `json:"unit_price"     validate:"gt=0"`
	Quantity      int         `json:"quantity"       validate:"gt=0"`
	Size          string      `json:"size"`
	Total         float64     `json:"total"          validate:"gt=0"`
	PaymentMethod string      `json:"payment_method"`
	Status        OrderStatus `json:"status"         validate:"required"`
	FailureReason string      `json:"failure_reason,omitempty"`

	// Gateway correlation, populated once by the payment callback and
	// immutable afterwards.
	RazorpayOrderID   string `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string `json:"razorpay_signature,omitempty"`

	OrderedAt time.Time `json:"ordered_at" validate:"required"`

	Shipping *ShippingSnapshot `json:"shipping" validate:"required" gorm:"foreignkey:OrderRefer;association_foreignkey:OrderID"`
	Tracking []TrackingEvent   `json:"tracking" gorm:"foreignkey:OrderRefer;association_foreignkey:OrderID"`
}

// ShippingSnapshot is the address captured at placement time. Later edits to
// the buyer's address book never alter historical orders.
type ShippingSnapshot struct {
	OrderRefer string `json:"-"         gorm:"type:varchar(36);index"`
	FullName   string `json:"full_name" validate:"required"`
	Mobile     string `json:"mobile"    validate:"required"`
	Pincode    string `json:"pincode"   validate:"required,len=6,number"`
	State      string `json:"state"     validate:"required"`
	District   string `json:"district"  validate:"required"`
	Village    string `json:"village"   validate:"required"`
	Locality   string `json:"locality"`
	City       string `json:"city"`
}

// Flat renders the snapshot as the single-line form used by the email
// template and the invoice bill-to block.
func (s *ShippingSnapshot) Flat() string {
	if s == nil {
		return ""
	}
	out := s.Village + ", " + s.District + ", " + s.State + " - " + s.Pincode
	if s.Locality != "" {
		out = s.Locality + ", " + out
	}
	return out
}

// TrackingEvent is one append-only shipment note. Rows are never edited or
// removed once written.
type TrackingEvent struct {
	ID         uint      `json:"-"      gorm:"primary_key;auto_increment"`
	OrderRefer string    `json:"-"      gorm:"type:varchar(36);index"`
	At         time.Time `json:"at"     validate:"required"`
	Note       string    `json:"status" validate:"required"`
}
