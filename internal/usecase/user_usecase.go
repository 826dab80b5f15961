package usecase

import (
	"context"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

type UpdateProfileInput struct {
	Username string
	FullName string
	Phone    string
	Bio      string
	Address  string
	City     string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	user.FullName = input.FullName
	user.Phone = input.Phone
	user.Bio = input.Bio
	user.Address = input.Address
	user.City = input.City

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	user.AvatarURL = avatarURL

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
