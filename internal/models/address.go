package models

import (
	"time"
)

type AddressType string

const (
	AddressHome   AddressType = "Home"
	AddressOffice AddressType = "Office"
	AddressOther  AddressType = "Other"
)

// Address is a saved address-book entry. At most one entry per customer has
// Default=true; the repository flips the flag transactionally.
type Address struct {
	AddressID  string      `json:"address_id"  validate:"required" gorm:"primary_key;unique"`
	CustomerID string      `json:"customer_id" validate:"required" gorm:"index"`
	FullName   string      `json:"full_name"   validate:"required"`
	Mobile     string      `json:"mobile"      validate:"required"`
	Pincode    string      `json:"pincode"     validate:"required,len=6,number"`
	State      string      `json:"state"       validate:"required"`
	Street     string      `json:"street"      validate:"required"`
	Locality   string      `json:"locality"`
	City       string      `json:"city"        validate:"required"`
	Type       AddressType `json:"type"        validate:"oneof=Home Office Other"`
	Default    bool        `json:"default"`
	CreatedAt  time.Time   `json:"created_at"`
}
