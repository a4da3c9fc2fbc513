package newsletter

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

type SignupRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// ------------------------------
// POST /api/newsletter
// ------------------------------
// Signing up an already subscribed address is an idempotent no-op: the
// existing record is untouched and the caller still gets a success response.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if !request.BindJSON(c, &req) {
		return
	}

	existing, err := h.Store.FindSignupByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Email already subscribed"})
		return
	}

	su := inbox.NewsletterSignup{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		SubscribedAt: time.Now().UTC(),
	}

	if err := h.Store.CreateSignup(&su); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to newsletter"})
}

// ------------------------------
// GET /api/admin/newsletter
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	subscribers, err := h.Store.ListSignups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscribers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}
