package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// CreateGatewayOrder is the stateless relay used by the checkout client:
// amount in, gateway session handle out.
func (s *Service) CreateGatewayOrder(ctx context.Context, amountMinor int64) (GatewayOrder, error) {
	if amountMinor <= 0 {
		return GatewayOrder{}, fmt.Errorf("%w: amount must be a positive integer of minor units", ErrValidation)
	}
	return s.gw.CreateOrder(ctx, amountMinor, "")
}

// VerifySignature recomputes the gateway's HMAC-SHA256 over
// "order_id|payment_id" with the merchant secret and compares it to the
// supplied hex signature. Missing fields short-circuit before the secret is
// touched. The check is pure: the same triplet always yields the same
// answer.
func (s *Service) VerifySignature(gatewayOrderID, paymentID, signature string) (bool, error) {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return false, fmt.Errorf("%w: missing payment fields", ErrValidation)
	}

	mac := hmac.New(sha256.New, []byte(s.opt.GatewaySecret))
	if _, err := mac.Write([]byte(gatewayOrderID + "|" + paymentID)); err != nil {
		return false, err
	}
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
