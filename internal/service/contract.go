package service

import (
	"context" // Request-scoped cancellation
	"time"    // Session lifetimes

	"notes_system/internal/domain" // Importing domain models
)

type (
	// CredentialStore holds user identities
	CredentialStore interface {
		Exists(ctx context.Context, username string) (bool, error)
		Create(ctx context.Context, user *domain.User) error
		FindByUsername(ctx context.Context, username string) (*domain.User, error)
		FindByID(ctx context.Context, id uint) (*domain.User, error)
	}

	// NoteStore persists notes; callers always pass the owner explicitly
	NoteStore interface {
		Create(ctx context.Context, note *domain.Note) error
		ListByOwner(ctx context.Context, ownerID uint) ([]domain.Note, error)
		Get(ctx context.Context, id, ownerID uint) (*domain.Note, error)
		Update(ctx context.Context, note *domain.Note) error
		Delete(ctx context.Context, id, ownerID uint) error
		CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	}

	// SessionStore tracks live refresh tokens
	SessionStore interface {
		Save(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error
		Lookup(ctx context.Context, tokenID string) (uint, bool, error)
		Delete(ctx context.Context, tokenID string) error
	}
)
