package entity

import "time"

const (
	OrderStatusCreated   = "created"
	OrderStatusPaid      = "paid"
	OrderStatusFailed    = "failed"
	OrderStatusCancelled = "cancelled"
)

// Order is a locally recorded payment attempt correlated with an
// external gateway order id. It is marked paid only after signature
// verification succeeds.
type Order struct {
	ID              string    `json:"id" firestore:"id"`
	UserID          string    `json:"user_id" firestore:"userId"`
	Amount          float64   `json:"amount" firestore:"amount"`
	Currency        string    `json:"currency" firestore:"currency"`
	Status          string    `json:"status" firestore:"status"`
	GatewayOrderID  string    `json:"gateway_order_id" firestore:"gatewayOrderId"`
	PaymentID       string    `json:"payment_id,omitempty" firestore:"paymentId,omitempty"`
	Receipt         string    `json:"receipt,omitempty" firestore:"receipt,omitempty"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
