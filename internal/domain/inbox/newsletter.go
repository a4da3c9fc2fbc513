package inbox

import "time"

// NewsletterSignup is an append-only subscriber record. Email is unique across
// the collection; a duplicate signup is answered as a no-op.
type NewsletterSignup struct {
	RowID uint   `gorm:"primaryKey;autoIncrement" json:"_id,string"`
	ID    string `gorm:"type:uuid;uniqueIndex;not null" json:"id"`

	Email string  `gorm:"not null;uniqueIndex" json:"email"`
	Name  *string `json:"name"`

	SubscribedAt time.Time `gorm:"not null;index" json:"subscribed_at"`
}
