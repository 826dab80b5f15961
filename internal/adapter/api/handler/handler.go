package handler

import (
	"rewear/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	productHandler  *ProductHandler
	cartHandler     *CartHandler
	favoriteHandler *FavoriteHandler
	messageHandler  *MessageHandler
	checkoutHandler *CheckoutHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	messageUseCase *usecase.MessageUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}
