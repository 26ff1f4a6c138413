package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Gateway abstracts the external payment provider. The server only needs two
// things from it: an order descriptor the frontend hands to the provider's
// checkout widget, and signature verification of the provider's callback.
type Gateway interface {
	CreateOrder(amount int64, currency string) Order
	VerifySignature(orderID, paymentID, signature string) bool
}

type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type HMACGateway struct {
	keyID     string
	keySecret string
}

func NewHMACGateway(keyID, keySecret string) *HMACGateway {
	return &HMACGateway{keyID: keyID, keySecret: keySecret}
}

func (g *HMACGateway) CreateOrder(amount int64, currency string) Order {
	return Order{
		OrderID:  "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:   amount,
		Currency: currency,
		KeyID:    g.keyID,
	}
}

// VerifySignature checks the provider's HMAC-SHA256 over "orderID|paymentID".
func (g *HMACGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

var _ Gateway = (*HMACGateway)(nil)
