package usecase

import (
	"context"

	"rewear/internal/infrastructure/firebase"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (*firebase.SignInResult, error)
	RefreshIDToken(ctx context.Context, refreshToken string) (*firebase.SignInResult, error)
	DeleteUser(ctx context.Context, uid string) error
}
