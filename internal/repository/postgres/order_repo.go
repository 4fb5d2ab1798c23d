package postgres

import (
	"time"

	"vashudhara/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

func (r *OrderPostgresRepo) Create(o models.Order) error {
	if o.Shipping != nil {
		o.Shipping.OrderRefer = o.OrderID
	}
	for i := range o.Tracking {
		o.Tracking[i].OrderRefer = o.OrderID
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return errors.Wrap(err, "create order")
		}
		return nil
	})
}

func (r *OrderPostgresRepo) Get(id string) (models.Order, error) {
	var o models.Order
	q := r.db.Preload("Shipping").
		Preload("Tracking", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("order_id = ?", id).
		First(&o)
	return o, q.Error
}

func (r *OrderPostgresRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	q := r.db.Preload("Shipping").
		Preload("Tracking", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("ordered_at desc").
		Find(&out)
	return out, q.Error
}

func (r *OrderPostgresRepo) GetByCustomer(customerID string) ([]models.Order, error) {
	var out []models.Order
	q := r.db.Preload("Shipping").
		Preload("Tracking", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("customer_id = ?", customerID).
		Order("ordered_at desc").
		Find(&out)
	return out, q.Error
}

// UpdateStatus is a compare-and-swap on the status column: it succeeds only
// while the stored status still equals from.
func (r *OrderPostgresRepo) UpdateStatus(id string, from, to models.OrderStatus, failureReason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{"status": to}
		if failureReason != "" {
			fields["failure_reason"] = failureReason
		}
		res := tx.Model(&models.Order{}).
			Where("order_id = ? AND status = ?", id, from).
			Updates(fields)
		if res.Error != nil {
			return errors.Wrap(res.Error, "update status")
		}
		if res.RowsAffected == 0 {
			var count int
			if err := tx.Model(&models.Order{}).
				Where("order_id = ?", id).
				Count(&count).Error; err != nil {
				return errors.Wrap(err, "update status recheck")
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrConflict
		}
		return nil
	})
}

func (r *OrderPostgresRepo) AttachPaymentProof(id, gatewayOrderID, paymentID, signature string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Where("order_id = ?", id).First(&o).Error; err != nil {
			return err
		}

		if o.RazorpayOrderID != "" || o.RazorpayPaymentID != "" || o.RazorpaySignature != "" {
			// Correlation fields are write-once. Re-delivery of the same
			// callback is fine; anything else is not.
			if o.RazorpayOrderID == gatewayOrderID &&
				o.RazorpayPaymentID == paymentID &&
				o.RazorpaySignature == signature {
				return nil
			}
			return ErrConflict
		}

		res := tx.Model(&models.Order{}).
			Where("order_id = ? AND status = ?", id, models.StatusPaymentPending).
			Updates(map[string]interface{}{
				"status":              models.StatusPaymentSuccessful,
				"razorpay_order_id":   gatewayOrderID,
				"razorpay_payment_id": paymentID,
				"razorpay_signature":  signature,
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, "attach payment proof")
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}
		return nil
	})
}

// AppendTracking inserts one event row. The timestamp is clamped so the
// sequence never goes backwards even across skewed admin clocks.
func (r *OrderPostgresRepo) AppendTracking(id, note string, at time.Time) (models.TrackingEvent, error) {
	var ev models.TrackingEvent
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&models.Order{}).
			Where("order_id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "append tracking")
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		var last models.TrackingEvent
		err := tx.Where("order_refer = ?", id).Order("id desc").First(&last).Error
		switch {
		case gorm.IsRecordNotFoundError(err):
		case err != nil:
			return errors.Wrap(err, "append tracking: read last")
		default:
			if at.Before(last.At) {
				at = last.At
			}
		}

		ev = models.TrackingEvent{OrderRefer: id, At: at, Note: note}
		if err := tx.Create(&ev).Error; err != nil {
			return errors.Wrap(err, "append tracking: insert")
		}
		return nil
	})
	return ev, err
}
