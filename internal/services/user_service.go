package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bnyashwanth/event-ticketing-system/internal/helpers"
	"github.com/bnyashwanth/event-ticketing-system/internal/models"
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
}

func NewUserService(userRepo models.UserRepo, jwtSecret string) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (us *UserService) Signup(ctx context.Context, user *models.User) (*models.User, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if !helpers.IsPasswordStrong(user.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters with upper, lower and digit", models.ErrValidation)
	}

	if _, err := us.userRepo.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", models.ErrValidation)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}
	user.Password = string(hash)

	return us.userRepo.CreateUser(ctx, user)
}

// Login checks credentials and returns the user along with a signed access
// token. Credential mismatches are indistinguishable from unknown emails.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	token, err := helpers.GenerateToken(user.ID.Hex(), user.Email, us.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %v", err)
	}

	return user, token, nil
}
