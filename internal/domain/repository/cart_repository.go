package repository

import (
	"context"
	"time"

	"rewear/internal/domain/entity"
)

type CartRepository interface {
	// AddToCart creates a (user, product) cart entry; the pair is unique.
	AddToCart(ctx context.Context, userID, productID string, start, end *time.Time) (*entity.CartItem, error)

	RemoveFromCart(ctx context.Context, userID, productID string) error

	// UpdateRentalDates replaces the rental window of an existing entry.
	UpdateRentalDates(ctx context.Context, userID, productID string, start, end *time.Time) error

	GetUserCart(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error)

	// ClearCart removes every entry for the user, after checkout.
	ClearCart(ctx context.Context, userID string) error
}
