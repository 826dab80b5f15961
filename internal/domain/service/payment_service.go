package service

import "context"

// GatewayOrderRequest represents an order creation request against the
// payment gateway.
type GatewayOrderRequest struct {
	Amount   float64 // major currency units
	Currency string
	Receipt  string
}

// GatewayOrderResponse represents the gateway's view of a created order.
type GatewayOrderResponse struct {
	OrderID  string
	Amount   float64 // major currency units
	Currency string
	Status   string
}

// PaymentGatewayService abstracts the external checkout gateway.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrderResponse, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
	KeyID() string
}
