package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Gateway is the one stable contract the checkout orchestration talks
// to. Whatever the concrete payment SDK offers gets adapted into it.
type Gateway interface {
	// CreateOrder registers a payment intent for the given minor-unit
	// amount and returns the gateway's order id for the client widget.
	CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error)
	// VerifySignature checks the widget success callback's signature.
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

type razorpayGateway struct {
	keyID     string
	keySecret string
	apiURL    string
	client    *http.Client
}

// NewGatewayFromEnv builds the Razorpay-backed Gateway from
// RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET (and optional RAZORPAY_API_URL).
func NewGatewayFromEnv() (Gateway, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}

	apiURL := os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1"
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		apiURL:    apiURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// KeyID exposes the public key the client widget needs.
func KeyID() string {
	return os.Getenv("RAZORPAY_KEY_ID")
}

type razorpayOrderResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

func (g *razorpayGateway) CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
		"notes": map[string]string{
			"paymentFor": "ArtVista Purchase",
		},
	}

	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", g.apiURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var orderResp razorpayOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return "", fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	if orderResp.Error != nil {
		return "", fmt.Errorf("razorpay error: %s", orderResp.Error.Description)
	}
	if orderResp.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}

	return orderResp.ID, nil
}

// VerifySignature recomputes HMAC-SHA256(order_id + "|" + payment_id)
// with the key secret and compares it to the callback's signature.
func (g *razorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
