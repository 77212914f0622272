package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                                   // Primary key
	Username string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"` // Unique username, case-sensitive
	Password string `gorm:"not null" json:"-"`                                      // Bcrypt hash, never plaintext
	Notes    []Note `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Note
}

// Principal is the authenticated caller resolved by the auth gate
type Principal struct {
	ID       uint   // User ID
	Username string // Username
}

// Principal returns the identity view of the user
func (u User) Principal() Principal {
	return Principal{ID: u.ID, Username: u.Username}
}

// Profile is the summary returned for the authenticated user
type Profile struct {
	Username  string `json:"username"`   // Username of the caller
	NoteCount int64  `json:"note_count"` // Number of notes currently owned
}
