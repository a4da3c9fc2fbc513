package uploads

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"portfolio-api/internal/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{Dir: dir}
}

// ------------------------------
// POST /api/admin/upload
// ------------------------------
// Streams the multipart file to the upload directory under a generated
// filename, then resizes it in place. A file the processor cannot decode is
// removed again before answering.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 10MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.NewString() + ext
	path := filepath.Join(h.Dir, filename)

	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	if err := media.ResizeToFit(path, media.MaxWidth, media.MaxHeight); err != nil {
		os.Remove(path)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error processing image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": "/uploads/" + filename, "filename": filename})
}
