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

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").OrderBy("createdAt", firestore.Desc)
	return r.listQuery(ctx, query, limit, offset)
}

func (r *firestoreProductRepository) ListByOwnerID(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)
	return r.listQuery(ctx, query, limit, offset)
}

func (r *firestoreProductRepository) listQuery(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Product, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

// GetByIDs batch fetches products keyed by id. Missing documents are
// simply absent from the result map.
func (r *firestoreProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	productMap := make(map[string]*entity.Product)

	// Firestore caps batch gets at 30 documents
	for i := 0; i < len(ids); i += 30 {
		end := i + 30
		if end > len(ids) {
			end = len(ids)
		}

		batchIDs := ids[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batchIDs))
		for j, id := range batchIDs {
			docRefs[j] = r.client.Collection("products").Doc(id)
		}

		docs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch products", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				continue
			}
			productMap[doc.Ref.ID] = &product
		}
	}

	return productMap, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}
