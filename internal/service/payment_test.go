package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	svc "vashudhara/internal/service"
)

func testSignature(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Authentic(t *testing.T) {
	s, _ := newTestService(t, svc.Options{GatewaySecret: "s3cr3t"})

	sig := testSignature("s3cr3t", "o1", "p1")
	ok, err := s.VerifySignature("o1", "p1", sig)
	require.NoError(t, err)
	require.True(t, ok)

	// Same triplet, same answer.
	ok, err = s.VerifySignature("o1", "p1", sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifySignature_Tampered(t *testing.T) {
	s, _ := newTestService(t, svc.Options{GatewaySecret: "s3cr3t"})
	sig := testSignature("s3cr3t", "o1", "p1")

	ok, err := s.VerifySignature("o1", "p2", sig)
	require.NoError(t, err)
	require.False(t, ok, "signature for a different payment id must not verify")

	ok, err = s.VerifySignature("o2", "p1", sig)
	require.NoError(t, err)
	require.False(t, ok)

	wrongSecret := testSignature("other", "o1", "p1")
	ok, err = s.VerifySignature("o1", "p1", wrongSecret)
	require.NoError(t, err)
	require.False(t, ok)

	upper := fmt.Sprintf("%X", mustDecodeHex(t, sig))
	ok, err = s.VerifySignature("o1", "p1", upper)
	require.NoError(t, err)
	require.False(t, ok, "comparison is over the exact hex encoding")
}

func TestVerifySignature_MissingFields(t *testing.T) {
	s, _ := newTestService(t, svc.Options{GatewaySecret: "s3cr3t"})

	for _, tc := range []struct{ oid, pid, sig string }{
		{"", "p1", "x"},
		{"o1", "", "x"},
		{"o1", "p1", ""},
	} {
		_, err := s.VerifySignature(tc.oid, tc.pid, tc.sig)
		require.ErrorIs(t, err, svc.ErrValidation)
	}
}

func TestCreateGatewayOrder(t *testing.T) {
	s, d := newTestService(t, svc.Options{})

	gw, err := s.CreateGatewayOrder(context.Background(), 100000)
	require.NoError(t, err)
	require.Equal(t, int64(100000), gw.Amount)
	require.Equal(t, int64(100000), d.gw.amount)

	_, err = s.CreateGatewayOrder(context.Background(), 0)
	require.ErrorIs(t, err, svc.ErrValidation)

	_, err = s.CreateGatewayOrder(context.Background(), -5)
	require.ErrorIs(t, err, svc.ErrValidation)
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
