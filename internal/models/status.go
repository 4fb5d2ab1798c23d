package models

// OrderStatus is the lifecycle state of an order. The placement and payment
// flows own the "Payment *" states, admins own the fulfilment states.
type OrderStatus string

const (
	StatusPaymentPending         OrderStatus = "Payment Pending"
	StatusPaymentSuccessful      OrderStatus = "Payment Successful"
	StatusPaymentCancelledByUser OrderStatus = "Payment Cancelled By User"
	StatusPaymentInitFailed      OrderStatus = "Payment Initiation Failed"
	StatusProcessing             OrderStatus = "Processing"
	StatusShipped                OrderStatus = "Shipped"
	StatusDelivered              OrderStatus = "Delivered"
	StatusCancelled              OrderStatus = "Cancelled"
	StatusRefunded               OrderStatus = "Refunded"
)

// AllStatuses is the set an admin may select from; requests outside the
// transition table below are still rejected.
var AllStatuses = []OrderStatus{
	StatusPaymentPending,
	StatusPaymentSuccessful,
	StatusPaymentCancelledByUser,
	StatusPaymentInitFailed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

var transitions = map[OrderStatus][]OrderStatus{
	StatusPaymentPending: {
		StatusPaymentSuccessful,
		StatusPaymentCancelledByUser,
		StatusPaymentInitFailed,
		StatusCancelled,
	},
	StatusPaymentSuccessful: {StatusProcessing, StatusCancelled, StatusRefunded},
	StatusProcessing:        {StatusShipped, StatusCancelled},
	StatusShipped:           {StatusDelivered, StatusCancelled},
	StatusDelivered:         {StatusRefunded},
	StatusCancelled:         {StatusRefunded},
	// Payment Cancelled By User, Payment Initiation Failed and Refunded are
	// terminal; the buyer re-initiates placement under a new order key.
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}
