// Package gateway wraps the Razorpay order API behind the service's
// PaymentGateway interface.
package gateway

import (
	"context"
	"fmt"

	"vashudhara/internal/service"

	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayGateway struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpay(keyID, keySecret, currency string) *RazorpayGateway {
	return &RazorpayGateway{
		client:   razorpay.NewClient(keyID, keySecret),
		currency: currency,
	}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amountMinor int64, receipt string) (service.GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": g.currency,
	}
	if receipt != "" {
		data["receipt"] = receipt
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return service.GatewayOrder{}, fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return service.GatewayOrder{}, fmt.Errorf("razorpay order create: response has no id")
	}

	return service.GatewayOrder{
		ID:       id,
		Currency: g.currency,
		Amount:   amountMinor,
	}, nil
}
