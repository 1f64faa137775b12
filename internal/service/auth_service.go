package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookstack/internal/auth"
	apperrors "bookstack/internal/errors"
	"bookstack/internal/model"
	"bookstack/internal/repository"
)

// RegisterInput carries the fields accepted at signup.
type RegisterInput struct {
	Email       string
	PhoneNumber string
	Password    string
	Role        string
	FirstName   string
	LastName    string
	Address     string
	Budget      decimal.Decimal
	Income      decimal.Decimal
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{users: users, jwtService: jwtService, bcryptCost: bcryptCost}
}

// Register creates a new user with a hashed password. The plaintext
// password is hashed exactly once, here; update paths never touch it.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if input.PhoneNumber != "" {
		if existing, err := s.users.FindByPhone(ctx, input.PhoneNumber); err == nil && existing != nil {
			return nil, apperrors.ErrUserAlreadyExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check user existence: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if !model.ValidRole(role) {
		role = model.RoleBuyer
	}

	user := &model.User{
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hashed),
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Address:      input.Address,
		Budget:       input.Budget,
		Income:       input.Income,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login resolves the user by email or phone number and, when the password
// matches, mints an access and a refresh token signed with distinct secrets.
func (s *authService) Login(ctx context.Context, identifier, password string) (*TokenPair, error) {
	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrWrongPassword
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh verifies a refresh token against its own secret, re-resolves the
// subject and mints a fresh access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	userID, err := claims.Subject()
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout is a no-op: tokens stay valid until natural expiry and the
// client discards them.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func (s *authService) findByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	user, err = s.users.FindByPhone(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	return nil, fmt.Errorf("find user: %w", err)
}
