package models

// Notification is the order-event record published to Kafka after an order
// mutation commits and consumed by the notifier worker. Field names are a
// wire contract shared with the email template; do not rename.
type Notification struct {
	OrderID         string             `json:"order_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	NewStatus       string             `json:"new_status"`
	OrderDate       string             `json:"order_date"`
	ShippingAddress string             `json:"shipping_address"`
	Items           []NotificationItem `json:"items"`
	Cost            NotificationCost   `json:"cost"`
}

type NotificationItem struct {
	Name     string  `json:"name"`
	Units    int     `json:"units"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type NotificationCost struct {
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
