package artworks

// CreateArtworkRequest is the admin create body; the identifier and creation
// timestamp are assigned server-side.
type CreateArtworkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url" binding:"required"`
	EtsyURL     *string  `json:"etsy_url"`
	GumroadURL  *string  `json:"gumroad_url"`
	Featured    bool     `json:"featured"`
}

// UpdateArtworkRequest carries merge-update fields: anything left nil keeps
// its stored value. An "id" in the body is ignored; the path identifier wins.
type UpdateArtworkRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"image_url"`
	EtsyURL     *string   `json:"etsy_url"`
	GumroadURL  *string   `json:"gumroad_url"`
	Featured    *bool     `json:"featured"`
}
