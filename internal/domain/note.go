package domain

// Note Model
type Note struct {
	ID      uint   `gorm:"primaryKey" json:"id"`           // Primary key
	UserID  uint   `gorm:"not null;index" json:"owner"`    // Foreign key to the owning User
	Title   string `gorm:"type:varchar(255)" json:"title"` // Note title
	Content string `gorm:"type:text" json:"content"`       // Note body
}

// NoteFields is the writable part of a note accepted on create and update.
// Unknown keys, including any owner, are dropped when decoding.
type NoteFields struct {
	Title   string `json:"title" validate:"required,notblank,max=255"` // Fits the varchar(255) column
	Content string `json:"content" validate:"required,notblank"`       // Content must be provided
}
