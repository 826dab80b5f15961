package entity

import "time"

// Message is a single buyer-owner message. Immutable once created
// except for the Read flag.
type Message struct {
	ID         string    `json:"id" firestore:"id"`
	SenderID   string    `json:"sender_id" firestore:"senderId"`
	ReceiverID string    `json:"receiver_id" firestore:"receiverId"`
	ProductID  string    `json:"product_id,omitempty" firestore:"productId,omitempty"`
	Content    string    `json:"content" firestore:"content"`
	Read       bool      `json:"read" firestore:"read"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// Conversation is a derived per-thread summary, recomputed on every
// fetch. It is keyed by (counterparty, product-or-none) and never
// persisted.
type Conversation struct {
	CounterpartyID string    `json:"counterparty_id"`
	Counterparty   *User     `json:"counterparty,omitempty"`
	ProductID      string    `json:"product_id,omitempty"`
	Product        *Product  `json:"product,omitempty"`
	LastMessage    string    `json:"last_message"`
	LastMessageAt  time.Time `json:"last_message_at"`
	Unread         int       `json:"unread"`
}
