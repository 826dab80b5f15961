package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rewear/internal/domain/entity"
	"rewear/pkg/errors"
)

type fakeFavoriteRepo struct {
	favorites map[string]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]bool)}
}

func (r *fakeFavoriteRepo) AddToFavorites(ctx context.Context, userID, productID string) (*entity.FavoriteItem, error) {
	r.favorites[userID+"_"+productID] = true
	return &entity.FavoriteItem{UserID: userID, ProductID: productID}, nil
}

func (r *fakeFavoriteRepo) RemoveFromFavorites(ctx context.Context, userID, productID string) error {
	delete(r.favorites, userID+"_"+productID)
	return nil
}

func (r *fakeFavoriteRepo) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	return r.favorites[userID+"_"+productID], nil
}

func (r *fakeFavoriteRepo) GetUserFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for key := range r.favorites {
		ids = append(ids, key)
	}
	return ids, nil
}

func (r *fakeFavoriteRepo) GetUserFavorites(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteItemWithProduct, int64, error) {
	return nil, 0, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ListByOwnerID(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			out[id] = product
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", OwnerID: "bob"})
	uc := NewFavoriteUseCase(newFakeFavoriteRepo(), productRepo)

	favorited, err := uc.ToggleFavorite(context.Background(), "alice", "p1")
	assert.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = uc.ToggleFavorite(context.Background(), "alice", "p1")
	assert.NoError(t, err)
	assert.False(t, favorited)

	exists, err := uc.IsFavorite(context.Background(), "alice", "p1")
	assert.NoError(t, err)
	assert.False(t, exists, "toggling twice restores the original state")
}

func TestToggleFavoriteRejectsOwnListing(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", OwnerID: "alice"})
	uc := NewFavoriteUseCase(newFakeFavoriteRepo(), productRepo)

	_, err := uc.ToggleFavorite(context.Background(), "alice", "p1")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestToggleFavoriteUnknownProduct(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo(), newFakeProductRepo())

	_, err := uc.ToggleFavorite(context.Background(), "alice", "missing")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
