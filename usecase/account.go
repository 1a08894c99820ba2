package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnly/server/domain/entities"
	"github.com/learnly/server/domain/repositories"
	"github.com/learnly/server/internal/auth"
)

// AccountService handles user registration and login
type AccountService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	logger    *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(users repositories.UserRepository, jwtSecret []byte, logger *zap.Logger) *AccountService {
	return &AccountService{
		users:     users,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates a new user account. The raw password is validated for
// length here, then only its bcrypt hash is stored.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*entities.User, error) {
	if l := len(password); l < 6 || l > 1024 {
		return nil, &entities.ValidationError{Field: "password", Reason: "must be 6 to 1024 characters"}
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &entities.ValidationError{Field: "email", Reason: "is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(username, email, string(hash))
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.Hex()))
	return user, nil
}

// Login checks the credentials and mints a bearer token for the user.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", &entities.ValidationError{Field: "email", Reason: "is not registered"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", &entities.ValidationError{Field: "password", Reason: "is invalid"}
	}

	token, err := auth.GenerateUserToken(s.jwtSecret, user.ID.Hex())
	if err != nil {
		s.logger.Error("Failed to generate user token",
			zap.String("user_id", user.ID.Hex()),
			zap.Error(err))
		return "", err
	}

	return token, nil
}
