package models

import (
	"time"
)

// RedeemCode is keyed by the code itself; uniqueness is the primary key and
// generation retries on collision.
type RedeemCode struct {
	Code      string    `json:"code"     validate:"required,len=6" gorm:"primary_key;unique"`
	Redeemed  bool      `json:"redeemed"`
	CreatedAt time.Time `json:"created_at"`
}
