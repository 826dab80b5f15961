package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	svc := NewRazorpayPaymentService("key_test", "secret_test")

	valid := sign("secret_test", "order_abc", "pay_xyz")

	assert.True(t, svc.VerifySignature("order_abc", "pay_xyz", valid))
	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", "deadbeef"))
	assert.False(t, svc.VerifySignature("order_other", "pay_xyz", valid), "signature is bound to the order")
	assert.False(t, svc.VerifySignature("order_abc", "pay_other", valid), "signature is bound to the payment")
	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", sign("wrong_secret", "order_abc", "pay_xyz")))
}

func TestKeyID(t *testing.T) {
	svc := NewRazorpayPaymentService("key_test", "secret_test")
	assert.Equal(t, "key_test", svc.KeyID())
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1000), minorUnits(10))
	assert.Equal(t, int64(1999), minorUnits(19.99), "amounts without an exact float form must round, not truncate")
	assert.Equal(t, int64(216995), minorUnits(2169.95))
	assert.Equal(t, int64(50), minorUnits(0.5))
	assert.Equal(t, int64(0), minorUnits(0))
}
