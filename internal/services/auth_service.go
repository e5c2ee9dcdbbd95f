package services

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the cost factor the stored hashes were created with.
const bcryptCost = 12

type AuthService struct {
	db       *gorm.DB
	tokens   *TokenService
	registry TokenRegistry
}

func NewAuthService(db *gorm.DB, tokens *TokenService, registry TokenRegistry) *AuthService {
	return &AuthService{db: db, tokens: tokens, registry: registry}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("failed to look up user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		Name:     req.Name,
		IsActive: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on email is the authoritative guard; a concurrent
		// registration can slip past the lookup above.
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("User with this email already exists")
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	return s.issueTokens(ctx, &user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	// Same message for unknown email and wrong password.
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	return s.issueTokens(ctx, &user)
}

// Refresh rotates the token pair. Every verification failure surfaces as the
// same generic unauthorized error.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	valid, err := s.registry.Validate(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, apperr.Internal("failed to validate refresh token", err)
	}
	if !valid {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_active = ?", claims.UserID, true).First(&user).Error; err != nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	// Storing the new token overwrites the single record for the user, which
	// is what invalidates the old value.
	return s.issueTokens(ctx, &user)
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to load user", err)
	}

	return &dto.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Logout drops the user's refresh-token record. Logging out with no stored
// token is not an error.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.registry.InvalidateAll(ctx, userID); err != nil {
		return apperr.Internal("failed to invalidate refresh token", err)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenPairResponse, error) {
	pair, err := s.tokens.GenerateTokens(user)
	if err != nil {
		return nil, apperr.Internal("failed to generate tokens", err)
	}

	if err := s.registry.Store(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, apperr.Internal("failed to store refresh token", err)
	}

	return pair, nil
}
