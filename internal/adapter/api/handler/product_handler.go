package handler

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
	"rewear/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Deposit     float64 `json:"deposit" validate:"gte=0"`
	Size        string  `json:"size"`
	Condition   string  `json:"condition"`
	Age         string  `json:"age"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), uid, usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Deposit:     req.Deposit,
		Size:        req.Size,
		Condition:   req.Condition,
		Age:         req.Age,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListByOwnerID(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	uid := c.Get("uid").(string)
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, uid, usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Deposit:     req.Deposit,
		Size:        req.Size,
		Condition:   req.Condition,
		Age:         req.Age,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	uid := c.Get("uid").(string)
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id, uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}
