package service

import (
	"context" // Request-scoped cancellation

	"notes_system/internal/domain" // Importing domain models
)

// ProfileService summarizes the caller's account
type ProfileService struct {
	notes NoteStore
}

// NewProfileService creates a ProfileService
func NewProfileService(notes NoteStore) *ProfileService {
	return &ProfileService{notes: notes}
}

// GetProfile returns the username with a fresh count of owned notes
func (s *ProfileService) GetProfile(ctx context.Context, owner domain.Principal) (*domain.Profile, error) {
	count, err := s.notes.CountByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Profile{Username: owner.Username, NoteCount: count}, nil
}
