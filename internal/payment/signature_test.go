package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignPayment(t *testing.T) {
	secret := "test_secret"
	sig := SignPayment(secret, "order_abc", "pay_xyz")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("order_abc|pay_xyz"))
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, sig)
	assert.Len(t, sig, 64) // hex-encoded SHA-256
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "test_secret"

	t.Run("Valid", func(t *testing.T) {
		sig := SignPayment(secret, "order_abc", "pay_xyz")
		assert.True(t, VerifyPaymentSignature(secret, "order_abc", "pay_xyz", sig))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		sig := SignPayment("other_secret", "order_abc", "pay_xyz")
		assert.False(t, VerifyPaymentSignature(secret, "order_abc", "pay_xyz", sig))
	})

	t.Run("TamperedOrderID", func(t *testing.T) {
		sig := SignPayment(secret, "order_abc", "pay_xyz")
		assert.False(t, VerifyPaymentSignature(secret, "order_def", "pay_xyz", sig))
	})

	t.Run("TamperedPaymentID", func(t *testing.T) {
		sig := SignPayment(secret, "order_abc", "pay_xyz")
		assert.False(t, VerifyPaymentSignature(secret, "order_abc", "pay_other", sig))
	})

	t.Run("EmptySignature", func(t *testing.T) {
		assert.False(t, VerifyPaymentSignature(secret, "order_abc", "pay_xyz", ""))
	})
}
