package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/service"
	"rewear/internal/infrastructure/ratelimit"
	"rewear/pkg/errors"
)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.nextID++
	order.ID = fmt.Sprintf("order-%d", r.nextID)
	order.CreatedAt = time.Now()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCartRepo struct {
	items   []entity.CartItemWithProduct
	cleared bool
}

func (r *fakeCartRepo) AddToCart(ctx context.Context, userID, productID string, start, end *time.Time) (*entity.CartItem, error) {
	return &entity.CartItem{UserID: userID, ProductID: productID, RentalStartDate: start, RentalEndDate: end}, nil
}

func (r *fakeCartRepo) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return nil
}

func (r *fakeCartRepo) UpdateRentalDates(ctx context.Context, userID, productID string, start, end *time.Time) error {
	return nil
}

func (r *fakeCartRepo) GetUserCart(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error) {
	return r.items, nil
}

func (r *fakeCartRepo) ClearCart(ctx context.Context, userID string) error {
	r.cleared = true
	return nil
}

type fakeGateway struct {
	validSignature string
	created        []service.GatewayOrderRequest
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req service.GatewayOrderRequest) (*service.GatewayOrderResponse, error) {
	g.created = append(g.created, req)
	return &service.GatewayOrderResponse{
		OrderID:  "rzp_test_1",
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	return signature == g.validSignature
}

func (g *fakeGateway) KeyID() string {
	return "key_test"
}

func ts(t time.Time) *time.Time { return &t }

func TestRentalDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, RentalDays(nil, nil), "missing dates fall back to one day")
	assert.Equal(t, 1, RentalDays(ts(start), nil))
	assert.Equal(t, 3, RentalDays(ts(start), ts(start.AddDate(0, 0, 3))))
	assert.Equal(t, 1, RentalDays(ts(start), ts(start)), "same day is billed as one")
	assert.Equal(t, 2, RentalDays(ts(start), ts(start.Add(30*time.Hour))), "partial days round up")
	assert.Equal(t, 3, RentalDays(ts(start.AddDate(0, 0, 3)), ts(start)), "reversed dates still price the span")
}

func TestQuoteItemsEmptyCart(t *testing.T) {
	quote := QuoteItems(nil, "INR")

	assert.Empty(t, quote.Lines)
	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.Deposit)
	assert.Zero(t, quote.Total)
	assert.Equal(t, "INR", quote.Currency)
}

func TestQuoteItemsTotals(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	items := []entity.CartItemWithProduct{
		{
			ProductID:       "p1",
			RentalStartDate: ts(start),
			RentalEndDate:   ts(start.AddDate(0, 0, 2)),
			Product:         &entity.Product{ID: "p1", Title: "Silk saree", Price: 500, Deposit: 1000},
		},
		{
			ProductID: "p2",
			Product:   &entity.Product{ID: "p2", Title: "Denim jacket", Price: 200, Deposit: 300},
		},
		{
			// Product deleted after the item was carted; skipped.
			ProductID: "p3",
		},
	}

	quote := QuoteItems(items, "INR")

	assert.Len(t, quote.Lines, 2)
	assert.Equal(t, 2, quote.Lines[0].Days)
	assert.Equal(t, 1000.0, quote.Lines[0].LineTotal)
	assert.Equal(t, 1, quote.Lines[1].Days)
	assert.Equal(t, 200.0, quote.Lines[1].LineTotal)
	assert.Equal(t, 1200.0, quote.Subtotal)
	assert.Equal(t, 1300.0, quote.Deposit)
	assert.Equal(t, 2500.0, quote.Total)
}

func newCheckoutFixture(items []entity.CartItemWithProduct, gateway *fakeGateway) (*CheckoutUseCase, *fakeOrderRepo, *fakeCartRepo) {
	orderRepo := newFakeOrderRepo()
	cartRepo := &fakeCartRepo{items: items}
	uc := NewCheckoutUseCase(orderRepo, cartRepo, gateway, ratelimit.NewRateLimiter(), "INR")
	return uc, orderRepo, cartRepo
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	uc, _, _ := newCheckoutFixture(nil, &fakeGateway{})

	_, err := uc.CreateOrder(context.Background(), "alice")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderPersistsCreatedState(t *testing.T) {
	items := []entity.CartItemWithProduct{
		{ProductID: "p1", Product: &entity.Product{ID: "p1", Price: 500, Deposit: 500}},
	}
	gateway := &fakeGateway{}
	uc, orderRepo, _ := newCheckoutFixture(items, gateway)

	checkout, err := uc.CreateOrder(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "rzp_test_1", checkout.GatewayOrderID)
	assert.Equal(t, 1000.0, checkout.Amount)
	assert.Equal(t, "key_test", checkout.KeyID)

	stored, err := orderRepo.GetByID(context.Background(), checkout.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCreated, stored.Status)
	assert.Equal(t, "alice", stored.UserID)
}

func TestVerifyPaymentInvalidSignatureLeavesOrderUnpaid(t *testing.T) {
	items := []entity.CartItemWithProduct{
		{ProductID: "p1", Product: &entity.Product{ID: "p1", Price: 500}},
	}
	gateway := &fakeGateway{validSignature: "good"}
	uc, orderRepo, cartRepo := newCheckoutFixture(items, gateway)

	checkout, err := uc.CreateOrder(context.Background(), "alice")
	assert.NoError(t, err)

	_, err = uc.VerifyPayment(context.Background(), "alice", VerifyPaymentInput{
		OrderID:        checkout.OrderID,
		GatewayOrderID: checkout.GatewayOrderID,
		PaymentID:      "pay_1",
		Signature:      "tampered",
	})
	assert.Error(t, err)

	stored, _ := orderRepo.GetByID(context.Background(), checkout.OrderID)
	assert.Equal(t, entity.OrderStatusCreated, stored.Status)
	assert.Empty(t, stored.PaymentID)
	assert.False(t, cartRepo.cleared)
}

func TestVerifyPaymentMarksPaidAndClearsCart(t *testing.T) {
	items := []entity.CartItemWithProduct{
		{ProductID: "p1", Product: &entity.Product{ID: "p1", Price: 500}},
	}
	gateway := &fakeGateway{validSignature: "good"}
	uc, orderRepo, cartRepo := newCheckoutFixture(items, gateway)

	checkout, err := uc.CreateOrder(context.Background(), "alice")
	assert.NoError(t, err)

	order, err := uc.VerifyPayment(context.Background(), "alice", VerifyPaymentInput{
		OrderID:        checkout.OrderID,
		GatewayOrderID: checkout.GatewayOrderID,
		PaymentID:      "pay_1",
		Signature:      "good",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, "pay_1", order.PaymentID)
	assert.True(t, cartRepo.cleared)

	stored, _ := orderRepo.GetByID(context.Background(), checkout.OrderID)
	assert.Equal(t, entity.OrderStatusPaid, stored.Status)
}

func TestVerifyPaymentRejectsForeignOrder(t *testing.T) {
	items := []entity.CartItemWithProduct{
		{ProductID: "p1", Product: &entity.Product{ID: "p1", Price: 500}},
	}
	gateway := &fakeGateway{validSignature: "good"}
	uc, _, _ := newCheckoutFixture(items, gateway)

	checkout, err := uc.CreateOrder(context.Background(), "alice")
	assert.NoError(t, err)

	_, err = uc.VerifyPayment(context.Background(), "mallory", VerifyPaymentInput{
		OrderID:        checkout.OrderID,
		GatewayOrderID: checkout.GatewayOrderID,
		PaymentID:      "pay_1",
		Signature:      "good",
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCancelPaymentNeverOverridesPaid(t *testing.T) {
	items := []entity.CartItemWithProduct{
		{ProductID: "p1", Product: &entity.Product{ID: "p1", Price: 500}},
	}
	gateway := &fakeGateway{validSignature: "good"}
	uc, orderRepo, _ := newCheckoutFixture(items, gateway)

	checkout, err := uc.CreateOrder(context.Background(), "alice")
	assert.NoError(t, err)

	_, err = uc.VerifyPayment(context.Background(), "alice", VerifyPaymentInput{
		OrderID:        checkout.OrderID,
		GatewayOrderID: checkout.GatewayOrderID,
		PaymentID:      "pay_1",
		Signature:      "good",
	})
	assert.NoError(t, err)

	order, err := uc.CancelPayment(context.Background(), "alice", checkout.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)

	stored, _ := orderRepo.GetByID(context.Background(), checkout.OrderID)
	assert.Equal(t, entity.OrderStatusPaid, stored.Status)
}

func TestCancelPaymentMarksCreatedOrderCancelled(t *testing.T) {
	items := []entity.CartItemWithProduct{
		{ProductID: "p1", Product: &entity.Product{ID: "p1", Price: 500}},
	}
	uc, orderRepo, _ := newCheckoutFixture(items, &fakeGateway{})

	checkout, err := uc.CreateOrder(context.Background(), "alice")
	assert.NoError(t, err)

	order, err := uc.CancelPayment(context.Background(), "alice", checkout.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)

	stored, _ := orderRepo.GetByID(context.Background(), checkout.OrderID)
	assert.Equal(t, entity.OrderStatusCancelled, stored.Status)
}
