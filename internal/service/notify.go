package service

import (
	"vashudhara/internal/models"
)

const orderDateLayout = "02 Jan 2006"

// BuildNotification flattens an order into the email wire record consumed by
// the notifier worker.
func BuildNotification(ord models.Order) models.Notification {
	return models.Notification{
		OrderID:         ord.OrderID,
		CustomerName:    ord.CustomerName,
		CustomerEmail:   ord.CustomerEmail,
		NewStatus:       string(ord.Status),
		OrderDate:       ord.OrderedAt.Format(orderDateLayout),
		ShippingAddress: ord.Shipping.Flat(),
		Items: []models.NotificationItem{
			{
				Name:     ord.ProductTitle,
				Units:    ord.Quantity,
				Price:    ord.UnitPrice,
				ImageURL: ord.ProductImage,
			},
		},
		Cost: models.NotificationCost{
			Shipping: 0,
			Tax:      0,
			Total:    ord.Total,
		},
	}
}
