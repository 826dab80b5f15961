package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"rewear/internal/adapter/api"
	"rewear/internal/adapter/api/handler"
	apimiddleware "rewear/internal/adapter/api/middleware"
	"rewear/internal/adapter/api/router"
	"rewear/internal/adapter/repository"
	"rewear/internal/domain/service"
	"rewear/internal/infrastructure/firebase"
	"rewear/internal/infrastructure/ratelimit"
	"rewear/internal/infrastructure/storage"
	"rewear/internal/infrastructure/websocket"
	"rewear/internal/usecase"
	"rewear/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Service account from environment variable in production, file path
	// for local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient, productRepo)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient, productRepo)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	paymentService := service.NewRazorpayPaymentService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, productRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo, productRepo, wsManager, rateLimiter, cfg.AutoReplyEnabled, cfg.AutoReplyDelay)
	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, cartRepo, paymentService, rateLimiter, cfg.Currency)

	handler.Setup(authUseCase, userUseCase, productUseCase, cartUseCase, favoriteUseCase, messageUseCase, checkoutUseCase)
	handler.SetupFileHandler(storageClient, userUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware)
	router.SetupFileRouter(e, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
