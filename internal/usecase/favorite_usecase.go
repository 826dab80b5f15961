package usecase

import (
	"context"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
	"rewear/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

func (uc *FavoriteUseCase) AddToFavorites(ctx context.Context, userID, productID string) (*entity.FavoriteItem, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}

	if product.OwnerID == userID {
		return nil, errors.BadRequest("Cannot add your own listing to favorites", nil)
	}

	return uc.favoriteRepo.AddToFavorites(ctx, userID, productID)
}

func (uc *FavoriteUseCase) RemoveFromFavorites(ctx context.Context, userID, productID string) error {
	return uc.favoriteRepo.RemoveFromFavorites(ctx, userID, productID)
}

// ToggleFavorite adds the product when absent and removes it when
// present; toggling twice restores the original state.
func (uc *FavoriteUseCase) ToggleFavorite(ctx context.Context, userID, productID string) (bool, error) {
	exists, err := uc.favoriteRepo.IsFavorite(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := uc.favoriteRepo.RemoveFromFavorites(ctx, userID, productID); err != nil {
			return false, err
		}
		logger.Debug("User %s unfavorited product %s", userID, productID)
		return false, nil
	}

	if _, err := uc.AddToFavorites(ctx, userID, productID); err != nil {
		return false, err
	}
	logger.Debug("User %s favorited product %s", userID, productID)
	return true, nil
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	return uc.favoriteRepo.IsFavorite(ctx, userID, productID)
}

func (uc *FavoriteUseCase) GetUserFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	return uc.favoriteRepo.GetUserFavoriteIDs(ctx, userID)
}

func (uc *FavoriteUseCase) GetUserFavorites(ctx context.Context, userID string, page, pageSize int) ([]entity.FavoriteItemWithProduct, int64, error) {
	offset := (page - 1) * pageSize
	return uc.favoriteRepo.GetUserFavorites(ctx, userID, pageSize, offset)
}
