package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
)

type firestoreCartRepository struct {
	client      *firestore.Client
	productRepo repository.ProductRepository
}

func NewFirestoreCartRepository(client *firestore.Client, productRepo repository.ProductRepository) repository.CartRepository {
	return &firestoreCartRepository{client: client, productRepo: productRepo}
}

// Cart entries use a deterministic doc id so the (user, product) pair
// is unique by construction.
func cartItemID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreCartRepository) AddToCart(ctx context.Context, userID, productID string, start, end *time.Time) (*entity.CartItem, error) {
	itemID := cartItemID(userID, productID)

	doc, err := r.client.Collection("cart_items").Doc(itemID).Get(ctx)
	if err == nil && doc.Exists() {
		return nil, errors.Conflict("Product already in cart")
	}
	if err != nil && !isNotFound(err) {
		return nil, errors.Internal("Failed to check cart", err)
	}

	if _, err := r.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	item := entity.CartItem{
		ID:              itemID,
		UserID:          userID,
		ProductID:       productID,
		RentalStartDate: start,
		RentalEndDate:   end,
		CreatedAt:       time.Now(),
	}

	if _, err := r.client.Collection("cart_items").Doc(itemID).Set(ctx, item); err != nil {
		return nil, errors.Internal("Failed to add to cart", err)
	}

	log.Printf("Added product %s to cart for user %s", productID, userID)
	return &item, nil
}

func (r *firestoreCartRepository) RemoveFromCart(ctx context.Context, userID, productID string) error {
	itemID := cartItemID(userID, productID)

	doc, err := r.client.Collection("cart_items").Doc(itemID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Cart item", err)
		}
		return errors.Internal("Failed to check cart", err)
	}
	if !doc.Exists() {
		return errors.NotFound("Cart item", nil)
	}

	if _, err := r.client.Collection("cart_items").Doc(itemID).Delete(ctx); err != nil {
		return errors.Internal("Failed to remove from cart", err)
	}

	log.Printf("Removed product %s from cart for user %s", productID, userID)
	return nil
}

func (r *firestoreCartRepository) UpdateRentalDates(ctx context.Context, userID, productID string, start, end *time.Time) error {
	itemID := cartItemID(userID, productID)

	_, err := r.client.Collection("cart_items").Doc(itemID).Update(ctx, []firestore.Update{
		{Path: "rentalStartDate", Value: start},
		{Path: "rentalEndDate", Value: end},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Cart item", err)
		}
		return errors.Internal("Failed to update rental dates", err)
	}

	return nil
}

func (r *firestoreCartRepository) GetUserCart(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error) {
	docs, err := r.client.Collection("cart_items").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get cart", err)
	}

	var items []entity.CartItem
	productIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var item entity.CartItem
		if err := doc.DataTo(&item); err != nil {
			log.Printf("Error parsing cart item %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, item)
		productIDs = append(productIDs, item.ProductID)
	}

	if len(productIDs) == 0 {
		return []entity.CartItemWithProduct{}, nil
	}

	productMap, err := r.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entity.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		product, exists := productMap[item.ProductID]
		if !exists {
			// Listing was deleted since the item was added; skip it.
			continue
		}
		result = append(result, entity.CartItemWithProduct{
			ID:              item.ID,
			UserID:          item.UserID,
			ProductID:       item.ProductID,
			RentalStartDate: item.RentalStartDate,
			RentalEndDate:   item.RentalEndDate,
			Product:         product,
			CreatedAt:       item.CreatedAt,
		})
	}

	return result, nil
}

func (r *firestoreCartRepository) ClearCart(ctx context.Context, userID string) error {
	docs, err := r.client.Collection("cart_items").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to get cart for clearing", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to clear cart", err)
		}
	}

	log.Printf("Cleared cart for user %s (%d items)", userID, len(docs))
	return nil
}
