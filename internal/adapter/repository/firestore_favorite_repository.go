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

type firestoreFavoriteRepository struct {
	client      *firestore.Client
	productRepo repository.ProductRepository
}

func NewFirestoreFavoriteRepository(client *firestore.Client, productRepo repository.ProductRepository) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client, productRepo: productRepo}
}

func favoriteItemID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreFavoriteRepository) AddToFavorites(ctx context.Context, userID, productID string) (*entity.FavoriteItem, error) {
	exists, err := r.IsFavorite(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Product already in favorites")
	}

	if _, err := r.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	itemID := favoriteItemID(userID, productID)
	item := entity.FavoriteItem{
		ID:        itemID,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	if _, err := r.client.Collection("favorites").Doc(itemID).Set(ctx, item); err != nil {
		return nil, errors.Internal("Failed to add to favorites", err)
	}

	log.Printf("Added product %s to favorites for user %s", productID, userID)
	return &item, nil
}

func (r *firestoreFavoriteRepository) RemoveFromFavorites(ctx context.Context, userID, productID string) error {
	exists, err := r.IsFavorite(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Favorite", nil)
	}

	itemID := favoriteItemID(userID, productID)
	if _, err := r.client.Collection("favorites").Doc(itemID).Delete(ctx); err != nil {
		return errors.Internal("Failed to remove from favorites", err)
	}

	log.Printf("Removed product %s from favorites for user %s", productID, userID)
	return nil
}

func (r *firestoreFavoriteRepository) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.client.Collection("favorites").Doc(favoriteItemID(userID, productID)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorites", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) GetUserFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	docs, err := r.client.Collection("favorites").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get favorites", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		var item entity.FavoriteItem
		if err := doc.DataTo(&item); err != nil {
			continue
		}
		ids = append(ids, item.ProductID)
	}

	return ids, nil
}

func (r *firestoreFavoriteRepository) GetUserFavorites(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteItemWithProduct, int64, error) {
	docs, err := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to get favorites", err)
	}

	var items []entity.FavoriteItem
	productIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var item entity.FavoriteItem
		if err := doc.DataTo(&item); err != nil {
			log.Printf("Error parsing favorite item %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, item)
		productIDs = append(productIDs, item.ProductID)
	}

	if len(productIDs) == 0 {
		return []entity.FavoriteItemWithProduct{}, 0, nil
	}

	productMap, err := r.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, 0, err
	}

	var result []entity.FavoriteItemWithProduct
	var total int64
	for _, item := range items {
		product, exists := productMap[item.ProductID]
		if !exists {
			continue
		}
		total++

		if int(total) > offset && (limit <= 0 || len(result) < limit) {
			result = append(result, entity.FavoriteItemWithProduct{
				ID:        item.ID,
				UserID:    item.UserID,
				ProductID: item.ProductID,
				Product:   product,
				CreatedAt: item.CreatedAt,
			})
		}
	}

	return result, total, nil
}
