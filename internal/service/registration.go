package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"fmt"     // Error wrapping

	"notes_system/internal/domain"   // Importing domain models
	"notes_system/internal/validate" // Schema validation

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// RegisterRequest is the registration schema
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=150"` // Fits the varchar(150) column
	Password string `json:"password" validate:"required,max=72"`           // bcrypt hashes at most 72 bytes
}

// maxPasswordBytes is the longest input bcrypt accepts; max=72 counts runes
const maxPasswordBytes = 72

// RegistrationService creates new user identities
type RegistrationService struct {
	users CredentialStore
	cost  int
}

// NewRegistrationService creates a RegistrationService hashing with bcrypt.DefaultCost
func NewRegistrationService(users CredentialStore) *RegistrationService {
	return &RegistrationService{users: users, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost
func (s *RegistrationService) WithHashCost(cost int) *RegistrationService {
	s.cost = cost
	return s
}

// Register validates the request and stores a new user with a hashed password
func (s *RegistrationService) Register(ctx context.Context, req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if len(req.Password) > maxPasswordBytes {
		verr := domain.NewValidationError()
		verr.Add("password", fmt.Sprintf("Ensure this field has no more than %d bytes.", maxPasswordBytes))
		return verr
	}
	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConflict
	}
	// Hash the password and create the user
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{Username: req.Username, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrConflict // Lost a race with a concurrent registration
		}
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,       // User ID
		"username": user.Username, // Username
	}).Info("User registered")
	return nil
}
