package models

import (
	"strings"
	"time"
)

// Product is the single catalog representation. Category listing is a query
// over the indexed category column, so there is no per-category mirror to
// keep in sync.
type Product struct {
	ProductID string    `json:"product_id" validate:"required" gorm:"primary_key;unique"`
	Title     string    `json:"title"      validate:"required"`
	Price     float64   `json:"price"      validate:"gt=0"`
	Brand     string    `json:"brand"      validate:"required"`
	Image     string    `json:"image"      validate:"required,url"`
	Category  string    `json:"category"   validate:"required" gorm:"index"`
	Sizes     string    `json:"sizes"` // comma separated, empty for one-size products
	CreatedAt time.Time `json:"created_at"`
}

func (p Product) SizeList() []string {
	if strings.TrimSpace(p.Sizes) == "" {
		return nil
	}
	parts := strings.Split(p.Sizes, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// HasSize reports whether size is one of the declared sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.SizeList() {
		if s == size {
			return true
		}
	}
	return false
}
