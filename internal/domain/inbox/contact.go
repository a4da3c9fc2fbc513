package inbox

import "time"

// ContactMessage is an append-only contact form submission. Records are never
// updated or deleted once written.
type ContactMessage struct {
	RowID uint   `gorm:"primaryKey;autoIncrement" json:"_id,string"`
	ID    string `gorm:"type:uuid;uniqueIndex;not null" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`

	SubmittedAt time.Time `gorm:"not null;index" json:"submitted_at"`
}

func (ContactMessage) TableName() string { return "contacts" }
