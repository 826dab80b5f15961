package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"
)

// RazorpayPaymentService - Razorpay implementation using the Orders HTTP API
type RazorpayPaymentService struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayPaymentService(keyID, keySecret string) *RazorpayPaymentService {
	return &RazorpayPaymentService{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   "https://api.razorpay.com/v1",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// razorpayOrderRequest represents the Razorpay Orders API request.
// Amount is in the smallest currency unit (paise for INR).
type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// minorUnits converts a major-unit amount to the gateway's smallest
// currency unit. Rounded, not truncated: 19.99 is not exactly
// representable and truncation would bill 1998 paise.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (rps *RazorpayPaymentService) CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrderResponse, error) {
	log.Printf("Creating Razorpay order: receipt=%s, amount=%.2f %s", req.Receipt, req.Amount, req.Currency)

	orderReq := razorpayOrderRequest{
		Amount:   minorUnits(req.Amount), // gateway expects paise/cents
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}

	jsonData, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", rps.baseURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	authHeader := base64.StdEncoding.EncodeToString([]byte(rps.keyID + ":" + rps.keySecret))
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+authHeader)

	resp, err := rps.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Razorpay API error: %s", string(body))
		return nil, fmt.Errorf("razorpay API error: %s", string(body))
	}

	var orderResp razorpayOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	if orderResp.ID == "" {
		return nil, fmt.Errorf("razorpay order id missing in response")
	}

	response := &GatewayOrderResponse{
		OrderID:  orderResp.ID,
		Amount:   float64(orderResp.Amount) / 100,
		Currency: orderResp.Currency,
		Status:   orderResp.Status,
	}

	log.Printf("Razorpay order created: %s", response.OrderID)
	return response, nil
}

// VerifySignature checks the checkout callback signature: an
// HMAC-SHA256 of "orderID|paymentID" keyed with the API secret,
// hex encoded.
func (rps *RazorpayPaymentService) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(rps.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (rps *RazorpayPaymentService) KeyID() string {
	return rps.keyID
}
