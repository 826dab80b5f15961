package entity

import (
	"time"
)

// Product is a single rentable garment listed by its owner.
// Price is the rental rate per day; Deposit is a refundable hold
// collected alongside the rent and returned after the item comes back.
type Product struct {
	ID          string  `json:"id" firestore:"id"`
	OwnerID     string  `json:"owner_id" firestore:"ownerId"`
	Title       string  `json:"title" firestore:"title"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
	Price       float64 `json:"price" firestore:"price"`
	Deposit     float64 `json:"deposit" firestore:"deposit"`
	Size        string  `json:"size,omitempty" firestore:"size,omitempty"`
	Condition   string  `json:"condition,omitempty" firestore:"condition,omitempty"`
	Age         string  `json:"age,omitempty" firestore:"age,omitempty"`
	ImageURL    string  `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
