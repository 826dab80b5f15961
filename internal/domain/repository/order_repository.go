package repository

import (
	"context"

	"rewear/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
}
