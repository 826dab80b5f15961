package handler

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
	"rewear/pkg/utils"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type verifyPaymentRequest struct {
	OrderID        string `json:"order_id" validate:"required"`
	GatewayOrderID string `json:"razorpay_order_id" validate:"required"`
	PaymentID      string `json:"razorpay_payment_id" validate:"required"`
	Signature      string `json:"razorpay_signature" validate:"required"`
}

type cancelPaymentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

func (h *CheckoutHandler) QuoteCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	quote, err := h.checkoutUseCase.QuoteCart(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.checkoutUseCase.CreateOrder(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.checkoutUseCase.VerifyPayment(c.Request().Context(), uid, usecase.VerifyPaymentInput{
		OrderID:        req.OrderID,
		GatewayOrderID: req.GatewayOrderID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *CheckoutHandler) CancelPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req cancelPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.checkoutUseCase.CancelPayment(c.Request().Context(), uid, req.OrderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	orders, total, err := h.checkoutUseCase.ListOrders(c.Request().Context(), uid, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}
