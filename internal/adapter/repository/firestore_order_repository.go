package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{client: client}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}
