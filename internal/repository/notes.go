package repository

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"fmt"     // Error wrapping

	"notes_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// NoteRepository persists notes. It applies no ownership policy itself;
// every lookup and write is scoped by the owner passed in.
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a NoteRepository on top of a GORM connection
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note and fills in its ID
func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's notes ordered by ID
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Note, error) {
	notes := []domain.Note{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes for user %d: %w", ownerID, err)
	}
	return notes, nil
}

// Get loads a note by (id, owner)
func (r *NoteRepository) Get(ctx context.Context, id, ownerID uint) (*domain.Note, error) {
	var note domain.Note
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note %d for user %d: %w", id, ownerID, err)
	}
	return &note, nil
}

// Update overwrites title and content of the note identified by (note.ID, note.UserID);
// no matching row yields domain.ErrNotFound
func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	res := r.db.WithContext(ctx).Model(&domain.Note{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{"title": note.Title, "content": note.Content})
	if res.Error != nil {
		return fmt.Errorf("failed to update note %d for user %d: %w", note.ID, note.UserID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound // Deleted since it was loaded
	}
	return nil
}

// Delete removes the note identified by (id, owner); nothing removed yields domain.ErrNotFound
func (r *NoteRepository) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Note{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete note %d for user %d: %w", id, ownerID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByOwner counts the owner's notes at query time
func (r *NoteRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Note{}).Where("user_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count notes for user %d: %w", ownerID, err)
	}
	return count, nil
}
