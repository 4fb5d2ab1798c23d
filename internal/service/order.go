package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"vashudhara/internal/models"
	"vashudhara/internal/repository/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func validationErr(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// Placement is the buyer's order request: a product selection plus the
// shipping address to snapshot.
type Placement struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ProductID     string
	Quantity      int
	Size          string
	PaymentMethod string
	Shipping      models.ShippingSnapshot
}

// StatusChange reports the outcome of an admin status mutation. The status
// commit and the notification hand-off succeed or fail independently; a
// notification problem surfaces as Warning, never as an error.
type StatusChange struct {
	Order       models.Order `json:"order"`
	EmailQueued bool         `json:"email_queued"`
	Warning     string       `json:"warning,omitempty"`
}

// PlaceOrder validates the placement, persists the order as Payment Pending
// and opens a gateway checkout session for the total in minor units. The
// order row survives a gateway failure as audit trail.
func (s *Service) PlaceOrder(ctx context.Context, in Placement) (models.Order, GatewayOrder, error) {
	if in.Quantity <= 0 {
		return models.Order{}, GatewayOrder{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.CustomerID) == "" || strings.TrimSpace(in.CustomerName) == "" {
		return models.Order{}, GatewayOrder{}, fmt.Errorf("%w: missing buyer identity", ErrValidation)
	}

	p, err := s.CatalogPostgres.Get(in.ProductID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, GatewayOrder{}, fmt.Errorf("%w: unknown product %s", ErrValidation, in.ProductID)
	}
	if err != nil {
		return models.Order{}, GatewayOrder{}, err
	}
	if p.Price <= 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return models.Order{}, GatewayOrder{}, fmt.Errorf("%w: product has no valid price", ErrValidation)
	}
	if len(p.SizeList()) > 0 {
		if in.Size == "" {
			return models.Order{}, GatewayOrder{}, fmt.Errorf("%w: size is required for this product", ErrValidation)
		}
		if !p.HasSize(in.Size) {
			return models.Order{}, GatewayOrder{}, fmt.Errorf("%w: unknown size %q", ErrValidation, in.Size)
		}
	}
	if err := validate.Struct(in.Shipping); err != nil {
		return models.Order{}, GatewayOrder{}, validationErr(err)
	}

	ord := models.Order{
		OrderID:       uuid.NewString(),
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		ProductID:     p.ProductID,
		ProductTitle:  p.Title,
		ProductImage:  p.Image,
		ProductBrand:  p.Brand,
		UnitPrice:     p.Price,
		Quantity:      in.Quantity,
		Size:          in.Size,
		Total:         p.Price * float64(in.Quantity),
		PaymentMethod: in.PaymentMethod,
		Status:        models.StatusPaymentPending,
		OrderedAt:     s.opt.Now().UTC(),
		Shipping:      &in.Shipping,
	}

	if err := s.OrderPostgres.Create(ord); err != nil {
		return models.Order{}, GatewayOrder{}, err
	}
	s.refreshCache(ord.OrderID)

	// Minor-unit rounding happens here and nowhere else; the stored total
	// stays exact.
	minor := int64(math.Round(ord.Total * 100))
	gw, err := s.gw.CreateOrder(ctx, minor, ord.OrderID)
	if err != nil {
		reason := err.Error()
		if uerr := s.OrderPostgres.UpdateStatus(
			ord.OrderID, models.StatusPaymentPending, models.StatusPaymentInitFailed, reason,
		); uerr != nil {
			logrus.WithError(uerr).WithField("order_id", ord.OrderID).
				Error("failed to record payment initiation failure")
		}
		s.refreshCache(ord.OrderID)
		return ord, GatewayOrder{}, fmt.Errorf("%w: %v", ErrPaymentInit, err)
	}

	return ord, gw, nil
}

// ConfirmPayment is the gateway success callback: verify the signature, then
// store the correlation triplet and flip the order to Payment Successful.
// Redelivery of an identical callback is a no-op success.
func (s *Service) ConfirmPayment(ctx context.Context, orderID, customerID, gatewayOrderID, paymentID, signature string) error {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("%w: missing payment fields", ErrValidation)
	}

	ord, err := s.OrderPostgres.Get(orderID)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if customerID != "" && ord.CustomerID != customerID {
		return ErrForbidden
	}

	ok, err := s.VerifySignature(gatewayOrderID, paymentID, signature)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSignatureMismatch
	}

	if err := s.OrderPostgres.AttachPaymentProof(orderID, gatewayOrderID, paymentID, signature); err != nil {
		if err == postgres.ErrConflict {
			return ErrConflict
		}
		return err
	}
	s.refreshCache(orderID)
	return nil
}

// CancelPayment records the buyer dismissing the gateway UI.
func (s *Service) CancelPayment(ctx context.Context, orderID, customerID string) error {
	ord, err := s.OrderPostgres.Get(orderID)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if customerID != "" && ord.CustomerID != customerID {
		return ErrForbidden
	}

	err = s.OrderPostgres.UpdateStatus(
		orderID, models.StatusPaymentPending, models.StatusPaymentCancelledByUser, "",
	)
	if err == postgres.ErrConflict {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	s.refreshCache(orderID)
	return nil
}

func (s *Service) GetOrder(orderID, customerID string) (models.Order, error) {
	ord, err := s.OrderPostgres.Get(orderID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	if ord.CustomerID != customerID {
		return models.Order{}, ErrForbidden
	}
	return ord, nil
}

func (s *Service) ListOrders(customerID string) ([]models.Order, error) {
	return s.OrderPostgres.GetByCustomer(customerID)
}

func (s *Service) AdminGetOrder(orderID string) (models.Order, error) {
	ord, err := s.OrderPostgres.Get(orderID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	return ord, err
}

// AdminListOrders serves the dashboard from the cache, newest first. A
// missing timestamp sorts as epoch zero instead of breaking the listing.
func (s *Service) AdminListOrders() ([]models.Order, error) {
	orders, err := s.OrderCache.GetAllOrders()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderedAt.After(orders[j].OrderedAt)
	})
	return orders, nil
}

// ChangeStatus applies an admin transition and, after the commit, hands the
// buyer notification to the event publisher. Notification problems never
// roll the status back.
func (s *Service) ChangeStatus(ctx context.Context, orderID string, next models.OrderStatus) (StatusChange, error) {
	if !next.Valid() {
		return StatusChange{}, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}

	cur, err := s.OrderPostgres.Get(orderID)
	if gorm.IsRecordNotFoundError(err) {
		return StatusChange{}, ErrNotFound
	}
	if err != nil {
		return StatusChange{}, err
	}
	if !cur.Status.CanTransitionTo(next) {
		return StatusChange{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, next)
	}

	err = s.OrderPostgres.UpdateStatus(orderID, cur.Status, next, "")
	if err == postgres.ErrConflict {
		return StatusChange{}, ErrConflict
	}
	if err != nil {
		return StatusChange{}, err
	}

	ord, err := s.OrderPostgres.Get(orderID)
	if err != nil {
		ord = cur
		ord.Status = next
	}
	s.OrderCache.PutOrder(ord.OrderID, ord)

	out := StatusChange{Order: ord}
	out.EmailQueued, out.Warning = s.queueNotification(ctx, ord)
	return out, nil
}

// AppendTracking adds one event to the order's append-only sequence.
func (s *Service) AppendTracking(orderID, note string) (models.TrackingEvent, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return models.TrackingEvent{}, fmt.Errorf("%w: empty tracking note", ErrValidation)
	}

	ev, err := s.OrderPostgres.AppendTracking(orderID, note, s.opt.Now().UTC())
	if gorm.IsRecordNotFoundError(err) {
		return models.TrackingEvent{}, ErrNotFound
	}
	if err != nil {
		return models.TrackingEvent{}, err
	}
	s.refreshCache(orderID)
	return ev, nil
}

// WarmCache loads persisted orders into the dashboard cache, skipping rows
// that no longer validate.
func (s *Service) WarmCache(limit int) error {
	orders, err := s.OrderPostgres.GetAll()
	if err != nil {
		return err
	}
	n := 0
	for _, o := range orders {
		if limit > 0 && n >= limit {
			break
		}
		if err := validate.Struct(o); err != nil {
			logrus.WithError(err).WithField("order_id", o.OrderID).Warn("skip invalid order from DB")
			continue
		}
		s.OrderCache.PutOrder(o.OrderID, o)
		n++
	}
	return nil
}

func (s *Service) refreshCache(orderID string) {
	ord, err := s.OrderPostgres.Get(orderID)
	if err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Warn("cache refresh failed")
		return
	}
	s.OrderCache.PutOrder(ord.OrderID, ord)
}

// queueNotification publishes the order event for the notifier worker. It is
// attempted only when the buyer contact and the mail configuration are
// usable; everything else is reported as a warning.
func (s *Service) queueNotification(ctx context.Context, ord models.Order) (bool, string) {
	if !s.opt.MailConfigured || s.pub == nil {
		return false, "mail delivery not configured, no notification sent"
	}
	if strings.TrimSpace(ord.CustomerEmail) == "" || strings.TrimSpace(ord.CustomerName) == "" {
		return false, "buyer contact missing, no notification sent"
	}

	payload, err := json.Marshal(BuildNotification(ord))
	if err != nil {
		return false, fmt.Sprintf("notification encode failed: %v", err)
	}
	if err := s.pub.Publish(ctx, payload); err != nil {
		logrus.WithError(err).WithField("order_id", ord.OrderID).
			Error("notification publish failed after status commit")
		return false, fmt.Sprintf("status updated but notification publish failed: %v", err)
	}
	return true, ""
}
