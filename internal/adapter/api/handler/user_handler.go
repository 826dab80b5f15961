package handler

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Username: req.Username,
		FullName: req.FullName,
		Phone:    req.Phone,
		Bio:      req.Bio,
		Address:  req.Address,
		City:     req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	user, err := h.userUseCase.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
