package entity

import (
	"time"
)

// CartItem links a user to a product they intend to rent. The rental
// window is optional until checkout; items without dates are quoted
// for a single day.
type CartItem struct {
	ID              string     `json:"id" firestore:"id"`
	UserID          string     `json:"user_id" firestore:"userId"`
	ProductID       string     `json:"product_id" firestore:"productId"`
	RentalStartDate *time.Time `json:"rental_start_date,omitempty" firestore:"rentalStartDate,omitempty"`
	RentalEndDate   *time.Time `json:"rental_end_date,omitempty" firestore:"rentalEndDate,omitempty"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
}

type CartItemWithProduct struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	ProductID       string     `json:"product_id"`
	RentalStartDate *time.Time `json:"rental_start_date,omitempty"`
	RentalEndDate   *time.Time `json:"rental_end_date,omitempty"`
	Product         *Product   `json:"product"`
	CreatedAt       time.Time  `json:"created_at"`
}
