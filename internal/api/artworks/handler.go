package artworks

import (
	"net/http"
	"strconv"
	"time"

	"portfolio-api/internal/api/request"
	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// ------------------------------
// GET /api/artworks
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	featuredOnly, err := strconv.ParseBool(c.DefaultQuery("featured_only", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "featured_only must be a boolean"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	artworks, err := h.Store.ListArtworks(featuredOnly, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	a, err := h.Store.GetArtwork(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// ------------------------------
// POST /api/admin/artworks
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateArtworkRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a := portfolio.Artwork{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		EtsyURL:     req.EtsyURL,
		GumroadURL:  req.GumroadURL,
		Featured:    req.Featured,
		CreatedAt:   time.Now().UTC(),
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}

	if err := h.Store.CreateArtwork(&a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork created successfully", "id": a.ID})
}

// ------------------------------
// PUT /api/admin/artworks/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req UpdateArtworkRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a, err := h.Store.GetArtwork(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	// merge semantics: only provided fields change, the identifier never does
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Price != nil {
		a.Price = req.Price
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Tags != nil {
		a.Tags = *req.Tags
	}
	if req.ImageURL != nil {
		a.ImageURL = *req.ImageURL
	}
	if req.EtsyURL != nil {
		a.EtsyURL = req.EtsyURL
	}
	if req.GumroadURL != nil {
		a.GumroadURL = req.GumroadURL
	}
	if req.Featured != nil {
		a.Featured = *req.Featured
	}

	if err := h.Store.SaveArtwork(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork updated successfully"})
}

// ------------------------------
// DELETE /api/admin/artworks/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.Store.DeleteArtwork(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
}
