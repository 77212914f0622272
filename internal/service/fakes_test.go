package service

import (
	"context"
	"sync"
	"time"

	"notes_system/internal/domain"
)

type memUsers struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uint]domain.User{}}
}

func (m *memUsers) Exists(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == user.Username {
			return domain.ErrConflict
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.byID[user.ID] = *user
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

type memNotes struct {
	mu      sync.Mutex
	nextID  uint
	byID    map[uint]domain.Note
	creates int
}

func newMemNotes() *memNotes {
	return &memNotes{byID: map[uint]domain.Note{}}
}

func (m *memNotes) Create(_ context.Context, note *domain.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	m.nextID++
	note.ID = m.nextID
	m.byID[note.ID] = *note
	return nil
}

func (m *memNotes) ListByOwner(_ context.Context, ownerID uint) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	notes := []domain.Note{}
	for id := uint(1); id <= m.nextID; id++ {
		if n, ok := m.byID[id]; ok && n.UserID == ownerID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (m *memNotes) Get(_ context.Context, id, ownerID uint) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.byID[id]
	if !ok || n.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (m *memNotes) Update(_ context.Context, note *domain.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.byID[note.ID]
	if !ok || n.UserID != note.UserID {
		return domain.ErrNotFound
	}
	m.byID[note.ID] = *note
	return nil
}

func (m *memNotes) Delete(_ context.Context, id, ownerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.byID[id]
	if !ok || n.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memNotes) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	notes, err := m.ListByOwner(ctx, ownerID)
	return int64(len(notes)), err
}

type memSessions struct {
	mu   sync.Mutex
	byID map[string]uint
}

func newMemSessions() *memSessions {
	return &memSessions{byID: map[string]uint{}}
}

func (m *memSessions) Save(_ context.Context, tokenID string, userID uint, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[tokenID] = userID
	return nil
}

func (m *memSessions) Lookup(_ context.Context, tokenID string) (uint, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byID[tokenID]
	return id, ok, nil
}

func (m *memSessions) Delete(_ context.Context, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, tokenID)
	return nil
}
