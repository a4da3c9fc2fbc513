package site

// SettingsKey is the fixed key of the singleton settings record.
const SettingsKey = "main"

// Settings holds the site-wide display strings and external links. Exactly one
// record exists, addressed by SettingsKey; it is lazily created with defaults
// on first read and replaced wholesale on admin update.
type Settings struct {
	Key string `gorm:"primaryKey" json:"-"`

	SiteTitle    string `gorm:"not null" json:"site_title"`
	ArtistName   string `gorm:"not null" json:"artist_name"`
	Bio          string `gorm:"not null" json:"bio"`
	HeroTitle    string `gorm:"not null" json:"hero_title"`
	HeroSubtitle string `gorm:"not null" json:"hero_subtitle"`
	EtsyShopURL  string `gorm:"column:etsy_shop_url;not null" json:"etsy_shop_url"`
	GumroadURL   string `gorm:"column:gumroad_url;not null" json:"gumroad_url"`
	ContactEmail string `gorm:"not null" json:"contact_email"`
}

func (Settings) TableName() string { return "site_settings" }

// DefaultSettings returns the built-in settings used until the admin saves
// their own.
func DefaultSettings() Settings {
	return Settings{
		Key:          SettingsKey,
		SiteTitle:    "Digital Artist Portfolio",
		ArtistName:   "Artist Name",
		Bio:          "Artist bio goes here",
		HeroTitle:    "Welcome to my world of digital art",
		HeroSubtitle: "Discover unique wall art and printables",
		EtsyShopURL:  "https://etsy.com/shop/YourShopName",
		GumroadURL:   "https://gumroad.com/YourName",
		ContactEmail: "youremail@example.com",
	}
}
