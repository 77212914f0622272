package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"fmt"     // Error wrapping
	"time"    // Token lifetimes

	"notes_system/internal/domain"   // Importing domain models
	"notes_system/internal/utils"    // JWT utility functions
	"notes_system/internal/validate" // Schema validation

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password verification
)

// LoginRequest is the token obtain schema
type LoginRequest struct {
	Username string `json:"username" validate:"required"` // Username must be provided
	Password string `json:"password" validate:"required"` // Password must be provided
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"` // Refresh token must be provided
}

// TokenPair is returned on login
type TokenPair struct {
	Access  string `json:"access"`  // Access token
	Refresh string `json:"refresh"` // Refresh token
}

// AccessToken is returned on refresh
type AccessToken struct {
	Access string `json:"access"` // Access token
}

// TokenConfig holds signing parameters
type TokenConfig struct {
	Secret     string        // HMAC secret
	AccessTTL  time.Duration // Access token lifetime
	RefreshTTL time.Duration // Refresh token lifetime
}

// AuthService issues and checks JWT credentials
type AuthService struct {
	users    CredentialStore
	sessions SessionStore
	cfg      TokenConfig
}

// NewAuthService creates an AuthService
func NewAuthService(users CredentialStore, sessions SessionStore, cfg TokenConfig) *AuthService {
	return &AuthService{users: users, sessions: sessions, cfg: cfg}
}

// errInvalidCredentials is returned for unknown users and wrong passwords alike
var errInvalidCredentials = fmt.Errorf("%w: no active account found with the given credentials", domain.ErrUnauthenticated)

// Login verifies the password and returns an access/refresh pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	user, err := s.users.FindByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials
	} else if err != nil {
		return nil, err
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	access, _, err := utils.GenerateJWT(user.ID, utils.AccessToken, s.cfg.Secret, s.cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, claims, err := utils.GenerateJWT(user.ID, utils.RefreshToken, s.cfg.Secret, s.cfg.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.sessions.Save(ctx, claims.ID, user.ID, s.cfg.RefreshTTL); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID, // User ID
	}).Info("User logged in")
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a live refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AccessToken, error) {
	claims, err := s.liveRefresh(ctx, req)
	if err != nil {
		return nil, err
	}
	access, _, err := utils.GenerateJWT(claims.UserID, utils.AccessToken, s.cfg.Secret, s.cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &AccessToken{Access: access}, nil
}

// Revoke invalidates a refresh token
func (s *AuthService) Revoke(ctx context.Context, req RefreshRequest) error {
	claims, err := s.liveRefresh(ctx, req)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": claims.UserID, // User ID
	}).Info("Refresh token revoked")
	return nil
}

// liveRefresh parses a refresh token and checks that it has not been revoked
func (s *AuthService) liveRefresh(ctx context.Context, req RefreshRequest) (*utils.Claims, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	claims, err := utils.ParseJWT(req.Refresh, utils.RefreshToken, s.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: token is invalid or expired", domain.ErrUnauthenticated)
	}
	userID, ok, err := s.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok || userID != claims.UserID {
		return nil, fmt.Errorf("%w: token is blacklisted", domain.ErrUnauthenticated)
	}
	return claims, nil
}

// Authenticate resolves the user behind an access token
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (domain.Principal, error) {
	claims, err := utils.ParseJWT(accessToken, utils.AccessToken, s.cfg.Secret)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthenticated)
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Principal{}, fmt.Errorf("%w: user not found", domain.ErrUnauthenticated)
	} else if err != nil {
		return domain.Principal{}, err
	}
	return user.Principal(), nil
}
