package postgres

import (
	"time"

	"vashudhara/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type CartPostgresRepo struct {
	db *gorm.DB
}

func NewCartPostgres(db *gorm.DB) *CartPostgresRepo {
	return &CartPostgresRepo{db: db}
}

func (r *CartPostgresRepo) Upsert(e models.CartEntry) error {
	e.UpdatedAt = time.Now().UTC()
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cur models.CartEntry
		err := tx.Where(
			"customer_id = ? AND product_id = ? AND size = ?",
			e.CustomerID, e.ProductID, e.Size,
		).First(&cur).Error
		switch {
		case gorm.IsRecordNotFoundError(err):
			return errors.Wrap(tx.Create(&e).Error, "cart insert")
		case err != nil:
			return errors.Wrap(err, "cart upsert")
		default:
			return errors.Wrap(tx.Model(&cur).Updates(map[string]interface{}{
				"title":      e.Title,
				"image":      e.Image,
				"brand":      e.Brand,
				"price":      e.Price,
				"quantity":   e.Quantity,
				"updated_at": e.UpdatedAt,
			}).Error, "cart update")
		}
	})
}

func (r *CartPostgresRepo) Delete(customerID, productID, size string) error {
	q := r.db.Where("customer_id = ? AND product_id = ?", customerID, productID)
	if size != "" {
		q = q.Where("size = ?", size)
	}
	return errors.Wrap(q.Delete(&models.CartEntry{}).Error, "cart delete")
}

func (r *CartPostgresRepo) List(customerID string) ([]models.CartEntry, error) {
	var out []models.CartEntry
	q := r.db.Where("customer_id = ?", customerID).Order("updated_at desc").Find(&out)
	return out, q.Error
}

func (r *CartPostgresRepo) AddWish(e models.WishlistEntry) error {
	e.AddedAt = time.Now().UTC()
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&models.WishlistEntry{}).
			Where("customer_id = ? AND product_id = ?", e.CustomerID, e.ProductID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "wishlist add")
		}
		if count > 0 {
			return nil
		}
		return errors.Wrap(tx.Create(&e).Error, "wishlist insert")
	})
}

func (r *CartPostgresRepo) RemoveWish(customerID, productID string) error {
	return errors.Wrap(r.db.
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.WishlistEntry{}).Error, "wishlist remove")
}

func (r *CartPostgresRepo) ListWishes(customerID string) ([]models.WishlistEntry, error) {
	var out []models.WishlistEntry
	q := r.db.Where("customer_id = ?", customerID).Order("added_at desc").Find(&out)
	return out, q.Error
}
