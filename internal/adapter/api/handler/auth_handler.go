package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=3"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
}

type authResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		FullName: req.FullName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User: userResponse{
			ID:       result.User.ID,
			Email:    result.User.Email,
			Username: result.User.Username,
			FullName: result.User.FullName,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User: userResponse{
			ID:       result.User.ID,
			Email:    result.User.Email,
			Username: result.User.Username,
			FullName: result.User.FullName,
		},
	})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"token":         result.Token,
		"refresh_token": result.RefreshToken,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	token := ""
	if parts := strings.Split(authHeader, " "); len(parts) == 2 {
		token = parts[1]
	}

	if err := h.authUseCase.Logout(c.Request().Context(), token); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
