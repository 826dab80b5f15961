package usecase

import (
	"context"
	"time"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
	"rewear/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	FullName string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Username:  input.Username,
		FullName:  input.FullName,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll the auth account back so the email is not burned.
		if delErr := uc.firebaseAuth.DeleteUser(ctx, uid); delErr != nil {
			logger.Warn("Failed to clean up auth account %s: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create profile record", err)
	}

	signIn, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	signIn, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Debug("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, signIn.IDToken)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	signIn, err := uc.firebaseAuth.RefreshIDToken(ctx, refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	return &AuthResult{
		Token:        signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// Logout is handled client-side by discarding tokens; the session
// itself lives with the auth provider.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return nil
}
