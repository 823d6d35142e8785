package service

import (
	"context"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
	"movierental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens security.TokenManager) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user account and returns it along with a fresh auth
// token, so the client is logged in right after signup.
func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
