package service

import (
	"context" // Request-scoped cancellation

	"notes_system/internal/domain"   // Importing domain models
	"notes_system/internal/validate" // Schema validation

	"github.com/sirupsen/logrus" // Logging library
)

// NoteService enforces ownership and validation over the note store
type NoteService struct {
	notes NoteStore
}

// NewNoteService creates a NoteService
func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// List returns the owner's notes; an empty slice is a valid result
func (s *NoteService) List(ctx context.Context, owner domain.Principal) ([]domain.Note, error) {
	return s.notes.ListByOwner(ctx, owner.ID)
}

// Get returns a note the caller owns; someone else's note yields domain.ErrNotFound
func (s *NoteService) Get(ctx context.Context, owner domain.Principal, id uint) (*domain.Note, error) {
	return s.notes.Get(ctx, id, owner.ID)
}

// Create validates fields and stores a new note owned by the caller
func (s *NoteService) Create(ctx context.Context, owner domain.Principal, fields domain.NoteFields) (*domain.Note, error) {
	if err := validate.Struct(fields); err != nil {
		return nil, err
	}
	note := &domain.Note{UserID: owner.ID, Title: fields.Title, Content: fields.Content}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": owner.ID, // Owner ID
		"note_id": note.ID,  // Note ID
	}).Info("Note created")
	return note, nil
}

// Update overwrites a note the caller owns. A missing note and a note owned by
// someone else both yield domain.ErrNotFound.
func (s *NoteService) Update(ctx context.Context, owner domain.Principal, id uint, fields domain.NoteFields) (*domain.Note, error) {
	note, err := s.notes.Get(ctx, id, owner.ID)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(fields); err != nil {
		return nil, err
	}
	note.Title = fields.Title
	note.Content = fields.Content
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": owner.ID, // Owner ID
		"note_id": note.ID,  // Note ID
	}).Info("Note updated")
	return note, nil
}

// Delete removes a note the caller owns; repeating it yields domain.ErrNotFound
func (s *NoteService) Delete(ctx context.Context, owner domain.Principal, id uint) error {
	if err := s.notes.Delete(ctx, id, owner.ID); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": owner.ID, // Owner ID
		"note_id": id,       // Note ID
	}).Info("Note deleted")
	return nil
}
