package postgres

import (
	"time"

	"vashudhara/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type AddressPostgresRepo struct {
	db *gorm.DB
}

func NewAddressPostgres(db *gorm.DB) *AddressPostgresRepo {
	return &AddressPostgresRepo{db: db}
}

func (r *AddressPostgresRepo) Create(a models.Address) error {
	a.CreatedAt = time.Now().UTC()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if a.Default {
			if err := clearDefault(tx, a.CustomerID); err != nil {
				return err
			}
		}
		return errors.Wrap(tx.Create(&a).Error, "create address")
	})
}

func (r *AddressPostgresRepo) Update(a models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if a.Default {
			if err := clearDefault(tx, a.CustomerID); err != nil {
				return err
			}
		}
		res := tx.Model(&models.Address{}).
			Where("address_id = ? AND customer_id = ?", a.AddressID, a.CustomerID).
			Updates(map[string]interface{}{
				"full_name": a.FullName,
				"mobile":    a.Mobile,
				"pincode":   a.Pincode,
				"state":     a.State,
				"street":    a.Street,
				"locality":  a.Locality,
				"city":      a.City,
				"type":      a.Type,
				"default":   a.Default,
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, "update address")
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AddressPostgresRepo) Delete(customerID, addressID string) error {
	res := r.db.Where("address_id = ? AND customer_id = ?", addressID, customerID).
		Delete(&models.Address{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete address")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AddressPostgresRepo) List(customerID string) ([]models.Address, error) {
	var out []models.Address
	q := r.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&out)
	return out, q.Error
}

// SetDefault makes addressID the single default for the customer, however
// many rows previously carried the flag.
func (r *AddressPostgresRepo) SetDefault(customerID, addressID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, customerID); err != nil {
			return err
		}
		res := tx.Model(&models.Address{}).
			Where("address_id = ? AND customer_id = ?", addressID, customerID).
			Update("default", true)
		if res.Error != nil {
			return errors.Wrap(res.Error, "set default")
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func clearDefault(tx *gorm.DB, customerID string) error {
	return errors.Wrap(tx.Model(&models.Address{}).
		Where(`customer_id = ? AND "default" = ?`, customerID, true).
		Update("default", false).Error, "clear default")
}
