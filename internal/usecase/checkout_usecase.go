package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/internal/domain/service"
	"rewear/internal/infrastructure/ratelimit"
	"rewear/pkg/errors"
	"rewear/pkg/logger"
)

type CheckoutUseCase struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	paymentService service.PaymentGatewayService
	rateLimiter    *ratelimit.RateLimiter
	currency       string
}

func NewCheckoutUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	paymentService service.PaymentGatewayService,
	rateLimiter *ratelimit.RateLimiter,
	currency string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		paymentService: paymentService,
		rateLimiter:    rateLimiter,
		currency:       currency,
	}
}

// QuoteLine is the priced view of one cart entry.
type QuoteLine struct {
	ProductID   string  `json:"product_id"`
	Title       string  `json:"title"`
	Days        int     `json:"days"`
	PricePerDay float64 `json:"price_per_day"`
	LineTotal   float64 `json:"line_total"`
	Deposit     float64 `json:"deposit"`
}

// CartQuote aggregates the checkout summary. The deposit is a
// refundable hold, kept separate from the rental subtotal.
type CartQuote struct {
	Lines    []QuoteLine `json:"lines"`
	Subtotal float64     `json:"subtotal"`
	Deposit  float64     `json:"deposit"`
	Total    float64     `json:"total"`
	Currency string      `json:"currency"`
}

// RentalDays computes the billable duration of a rental window,
// rounding partial days up. A missing date on either side falls back
// to a single day.
func RentalDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 1
	}

	diff := end.Sub(*start)
	if diff < 0 {
		diff = -diff
	}

	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// QuoteItems prices a set of cart entries: line = price/day x days,
// subtotal = sum of lines, deposit = sum of per-item deposits, total =
// subtotal + deposit. Missing prices or deposits count as zero.
func QuoteItems(items []entity.CartItemWithProduct, currency string) *CartQuote {
	quote := &CartQuote{
		Lines:    make([]QuoteLine, 0, len(items)),
		Currency: currency,
	}

	for _, item := range items {
		if item.Product == nil {
			continue
		}

		days := RentalDays(item.RentalStartDate, item.RentalEndDate)
		lineTotal := item.Product.Price * float64(days)

		quote.Lines = append(quote.Lines, QuoteLine{
			ProductID:   item.ProductID,
			Title:       item.Product.Title,
			Days:        days,
			PricePerDay: item.Product.Price,
			LineTotal:   lineTotal,
			Deposit:     item.Product.Deposit,
		})

		quote.Subtotal += lineTotal
		quote.Deposit += item.Product.Deposit
	}

	quote.Total = quote.Subtotal + quote.Deposit
	return quote
}

func (uc *CheckoutUseCase) QuoteCart(ctx context.Context, userID string) (*CartQuote, error) {
	items, err := uc.cartRepo.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return QuoteItems(items, uc.currency), nil
}

// CheckoutOrder is everything the payment widget needs to open.
type CheckoutOrder struct {
	OrderID        string  `json:"order_id"`
	GatewayOrderID string  `json:"gateway_order_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	KeyID          string  `json:"key_id"`
}

// CreateOrder quotes the cart, creates the gateway order, and records
// the local order in "created" state.
func (uc *CheckoutUseCase) CreateOrder(ctx context.Context, userID string) (*CheckoutOrder, error) {
	if allowed, wait := uc.rateLimiter.Allow(userID, "create_order"); !allowed {
		return nil, errors.TooManyRequests(fmt.Sprintf("Too many checkout attempts, retry in %.0fs", wait.Seconds()))
	}

	quote, err := uc.QuoteCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quote.Total <= 0 {
		return nil, errors.BadRequest("Amount is required and must be greater than 0", nil)
	}

	receipt := "rcpt_" + uuid.New().String()
	gatewayOrder, err := uc.paymentService.CreateOrder(ctx, service.GatewayOrderRequest{
		Amount:   quote.Total,
		Currency: quote.Currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, errors.Internal("Failed to create payment order", err)
	}

	order := &entity.Order{
		UserID:         userID,
		Amount:         quote.Total,
		Currency:       quote.Currency,
		Status:         entity.OrderStatusCreated,
		GatewayOrderID: gatewayOrder.OrderID,
		Receipt:        receipt,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s created for user %s (gateway %s, amount %.2f)", order.ID, userID, order.GatewayOrderID, order.Amount)

	return &CheckoutOrder{
		OrderID:        order.ID,
		GatewayOrderID: order.GatewayOrderID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		KeyID:          uc.paymentService.KeyID(),
	}, nil
}

type VerifyPaymentInput struct {
	OrderID        string
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

// VerifyPayment checks the gateway callback signature and, on a match,
// marks the order paid and clears the cart. A cart clearing failure is
// logged but never reverts the payment; there is no compensating
// transaction.
func (uc *CheckoutUseCase) VerifyPayment(ctx context.Context, userID string, input VerifyPaymentInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("Order belongs to another user", nil)
	}

	if order.GatewayOrderID != input.GatewayOrderID {
		return nil, errors.BadRequest("Order does not match the gateway order", nil)
	}

	if order.Status == entity.OrderStatusPaid {
		return order, nil
	}

	if !uc.paymentService.VerifySignature(input.GatewayOrderID, input.PaymentID, input.Signature) {
		return nil, errors.BadRequest("Payment verification failed: Invalid signature", nil)
	}

	order.Status = entity.OrderStatusPaid
	order.PaymentID = input.PaymentID

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.ClearCart(ctx, userID); err != nil {
		logger.LogOrderError(order.ID, "clear_cart", err)
	}

	logger.Info("Order %s verified and marked paid", order.ID)
	return order, nil
}

// CancelPayment records a widget dismissal. The order is never marked
// paid from this path; an already-paid order is left untouched.
func (uc *CheckoutUseCase) CancelPayment(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("Order belongs to another user", nil)
	}

	if order.Status == entity.OrderStatusPaid {
		return order, nil
	}

	order.Status = entity.OrderStatusCancelled
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s cancelled by user dismissal", orderID)
	return order, nil
}

func (uc *CheckoutUseCase) ListOrders(ctx context.Context, userID string, page, pageSize int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * pageSize
	return uc.orderRepo.ListByUserID(ctx, userID, pageSize, offset)
}
