package site

import (
	"net/http"

	"portfolio-api/internal/api/request"
	"portfolio-api/internal/domain/site"
	"portfolio-api/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// ------------------------------
// GET /api/settings
// ------------------------------
// The singleton is lazily created: the first read against an empty store
// persists the built-in defaults and returns them.
func (h *Handler) Get(c *gin.Context) {
	settings, err := h.Store.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	if settings == nil {
		defaults := site.DefaultSettings()
		if err := h.Store.SaveSettings(&defaults); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize settings"})
			return
		}
		settings = &defaults
	}

	c.JSON(http.StatusOK, settings)
}

// ------------------------------
// PUT /api/admin/settings
// ------------------------------
// Full replace against the fixed key: fields absent from the body fall back to
// the built-in defaults rather than keeping their stored values.
func (h *Handler) Update(c *gin.Context) {
	settings := site.DefaultSettings()
	if !request.BindJSON(c, &settings) {
		return
	}

	if err := h.Store.SaveSettings(&settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
