package portfolio

import "time"

// Artwork is a single flat portfolio record. RowID is the storage-internal
// primary key (exposed as a stringified "_id"); ID is the generated public
// identifier assigned by the handler on create and immutable afterwards.
type Artwork struct {
	RowID uint   `gorm:"primaryKey;autoIncrement" json:"_id,string"`
	ID    string `gorm:"type:uuid;uniqueIndex;not null" json:"id"`

	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `gorm:"not null;index" json:"category"`
	Tags        []string `gorm:"serializer:json" json:"tags"`

	ImageURL   string  `gorm:"column:image_url;not null" json:"image_url"`
	EtsyURL    *string `gorm:"column:etsy_url" json:"etsy_url"`
	GumroadURL *string `gorm:"column:gumroad_url" json:"gumroad_url"`

	Featured bool `gorm:"not null;default:false;index" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
}
