package handler

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
	"rewear/pkg/utils"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	favorited, err := h.favoriteUseCase.ToggleFavorite(c.Request().Context(), uid, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"favorited":  favorited,
	})
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	if err := h.favoriteUseCase.RemoveFromFavorites(c.Request().Context(), uid, productID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Removed from favorites",
	})
}

// GetFavoriteIDs returns just the product ids, for painting heart
// icons on listing grids without fetching full products.
func (h *FavoriteHandler) GetFavoriteIDs(c echo.Context) error {
	uid := c.Get("uid").(string)

	ids, err := h.favoriteUseCase.GetUserFavoriteIDs(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ids)
}

func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	items, total, err := h.favoriteUseCase.GetUserFavorites(c.Request().Context(), uid, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}
