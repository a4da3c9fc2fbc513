package contact

import (
	"net/http"
	"time"

	"portfolio-api/internal/api/request"
	"portfolio-api/internal/domain/inbox"
	"portfolio-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ------------------------------
// POST /api/contact
// ------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if !request.BindJSON(c, &req) {
		return
	}

	m := inbox.ContactMessage{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	}

	if err := h.Store.CreateContact(&m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact form submitted successfully"})
}

// ------------------------------
// GET /api/admin/contacts
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	contacts, err := h.Store.ListContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}
