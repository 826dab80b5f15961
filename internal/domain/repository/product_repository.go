package repository

import (
	"context"

	"rewear/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error)
	ListByOwnerID(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Product, int64, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
