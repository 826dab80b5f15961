package repository

import (
	"context"

	"rewear/internal/domain/entity"
)

type FavoriteRepository interface {
	AddToFavorites(ctx context.Context, userID, productID string) (*entity.FavoriteItem, error)
	RemoveFromFavorites(ctx context.Context, userID, productID string) error
	IsFavorite(ctx context.Context, userID, productID string) (bool, error)
	GetUserFavoriteIDs(ctx context.Context, userID string) ([]string, error)
	GetUserFavorites(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteItemWithProduct, int64, error)
}
