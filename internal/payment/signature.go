package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayment computes the gateway's payment signature: hex-encoded
// HMAC-SHA256 over "<gatewayOrderID>|<paymentID>".
func SignPayment(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks the caller-supplied signature in constant
// time.
func VerifyPaymentSignature(secret, gatewayOrderID, paymentID, signature string) bool {
	expected := SignPayment(secret, gatewayOrderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
