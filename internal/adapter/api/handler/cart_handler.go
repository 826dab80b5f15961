package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addToCartRequest struct {
	ProductID       string  `json:"product_id" validate:"required"`
	RentalStartDate *string `json:"rental_start_date"`
	RentalEndDate   *string `json:"rental_end_date"`
}

type updateRentalDatesRequest struct {
	RentalStartDate *string `json:"rental_start_date"`
	RentalEndDate   *string `json:"rental_end_date"`
}

func parseRentalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		// Date-only form from pickers.
		t, err = time.Parse("2006-01-02", *value)
		if err != nil {
			return nil, err
		}
	}

	return &t, nil
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	start, err := parseRentalDate(req.RentalStartDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid rental start date", err))
	}

	end, err := parseRentalDate(req.RentalEndDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid rental end date", err))
	}

	item, err := h.cartUseCase.AddToCart(c.Request().Context(), uid, req.ProductID, start, end)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	if err := h.cartUseCase.RemoveFromCart(c.Request().Context(), uid, productID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item removed from cart",
	})
}

func (h *CartHandler) UpdateRentalDates(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	var req updateRentalDatesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	start, err := parseRentalDate(req.RentalStartDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid rental start date", err))
	}

	end, err := parseRentalDate(req.RentalEndDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid rental end date", err))
	}

	if err := h.cartUseCase.UpdateRentalDates(c.Request().Context(), uid, productID, start, end); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Rental dates updated",
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	items, err := h.cartUseCase.GetUserCart(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.cartUseCase.ClearCart(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}
