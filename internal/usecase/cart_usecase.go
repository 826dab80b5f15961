package usecase

import (
	"context"
	"time"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (uc *CartUseCase) AddToCart(ctx context.Context, userID, productID string, start, end *time.Time) (*entity.CartItem, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.OwnerID == userID {
		return nil, errors.BadRequest("Cannot rent your own listing", nil)
	}

	if start != nil && end != nil && end.Before(*start) {
		return nil, errors.BadRequest("Rental end date must not be before the start date", nil)
	}

	return uc.cartRepo.AddToCart(ctx, userID, productID, start, end)
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return uc.cartRepo.RemoveFromCart(ctx, userID, productID)
}

func (uc *CartUseCase) UpdateRentalDates(ctx context.Context, userID, productID string, start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.BadRequest("Rental end date must not be before the start date", nil)
	}

	return uc.cartRepo.UpdateRentalDates(ctx, userID, productID, start, end)
}

func (uc *CartUseCase) GetUserCart(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error) {
	return uc.cartRepo.GetUserCart(ctx, userID)
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartRepo.ClearCart(ctx, userID)
}
