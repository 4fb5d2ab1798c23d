package postgres

import (
	"time"

	"vashudhara/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type RedeemPostgresRepo struct {
	db *gorm.DB
}

func NewRedeemPostgres(db *gorm.DB) *RedeemPostgresRepo {
	return &RedeemPostgresRepo{db: db}
}

// Create reports ErrDuplicate when the code already exists so the caller can
// retry with a fresh one.
func (r *RedeemPostgresRepo) Create(code models.RedeemCode) error {
	code.CreatedAt = time.Now().UTC()
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&models.RedeemCode{}).
			Where("code = ?", code.Code).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "create redeem code")
		}
		if count > 0 {
			return ErrDuplicate
		}
		return errors.Wrap(tx.Create(&code).Error, "create redeem code")
	})
}

func (r *RedeemPostgresRepo) Get(code string) (models.RedeemCode, error) {
	var rc models.RedeemCode
	q := r.db.Where("code = ?", code).First(&rc)
	return rc, q.Error
}

// MarkRedeemed is one-way and idempotent.
func (r *RedeemPostgresRepo) MarkRedeemed(code string) error {
	res := r.db.Model(&models.RedeemCode{}).
		Where("code = ?", code).
		Update("redeemed", true)
	if res.Error != nil {
		return errors.Wrap(res.Error, "mark redeemed")
	}
	if res.RowsAffected == 0 {
		var count int
		if err := r.db.Model(&models.RedeemCode{}).
			Where("code = ?", code).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "mark redeemed recheck")
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
