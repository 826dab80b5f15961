package usecase

import (
	"context"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
	"rewear/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, userRepo repository.UserRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Deposit     float64
	Size        string
	Condition   string
	Age         string
	ImageURL    string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, ownerID string, input ProductInput) (*entity.Product, error) {
	if _, err := uc.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, errors.NotFound("User", err)
	}

	product := &entity.Product{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Deposit:     input.Deposit,
		Size:        input.Size,
		Condition:   input.Condition,
		Age:         input.Age,
		ImageURL:    input.ImageURL,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product %s listed by user %s", product.ID, ownerID)
	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, limit, offset)
}

func (uc *ProductUseCase) ListByOwnerID(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListByOwnerID(ctx, ownerID, limit, offset)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, ownerID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.OwnerID != ownerID {
		return nil, errors.Forbidden("You can only update your own listings", nil)
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Deposit = input.Deposit
	product.Size = input.Size
	product.Condition = input.Condition
	product.Age = input.Age
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, ownerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.OwnerID != ownerID {
		return errors.Forbidden("You can only delete your own listings", nil)
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Product %s deleted by user %s", id, ownerID)
	return nil
}
