package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maison/backend/internal/domain"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// RecommendationProvider builds the recommendations rail
type RecommendationProvider interface {
	GetRecommendations(ctx context.Context, userID *uuid.UUID) (*domain.Recommendations, error)
}

// PreferenceManager reads and records style-quiz answers
type PreferenceManager interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error)
	Save(ctx context.Context, userID uuid.UUID, answers *domain.QuizAnswers) (*domain.UserPreferences, error)
}

// CatalogReader serves read-only catalog queries
type CatalogReader interface {
	ListProducts(ctx context.Context, featuredOnly bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// Handler holds dependencies for HTTP handlers. Nil services answer 501.
type Handler struct {
	recommendations RecommendationProvider
	preferences     PreferenceManager
	catalog         CatalogReader
	logger          *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	recommendations RecommendationProvider,
	preferences PreferenceManager,
	catalog CatalogReader,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		recommendations: recommendations,
		preferences:     preferences,
		catalog:         catalog,
		logger:          logger.Named("http"),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront-backend",
		"version": Version,
	})
}

// GetRecommendations handles GET /api/v1/recommendations.
// Guests and users without a completed quiz get the featured fallback.
func (h *Handler) GetRecommendations(c *gin.Context) {
	if h.recommendations == nil {
		notConfigured(c, "Recommendation service")
		return
	}

	var userID *uuid.UUID
	if id, ok := UserIDFromContext(c); ok {
		userID = &id
	}

	result, err := h.recommendations.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListProducts handles GET /api/v1/products?featured=true
func (h *Handler) ListProducts(c *gin.Context) {
	if h.catalog == nil {
		notConfigured(c, "Catalog service")
		return
	}

	featuredOnly := c.Query("featured") == "true"
	products, err := h.catalog.ListProducts(c.Request.Context(), featuredOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/v1/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	if h.catalog == nil {
		notConfigured(c, "Catalog service")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetPreferences handles GET /api/v1/preferences for the authenticated user
func (h *Handler) GetPreferences(c *gin.Context) {
	if h.preferences == nil {
		notConfigured(c, "Preference service")
		return
	}

	userID, ok := UserIDFromContext(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	prefs, err := h.preferences.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// SavePreferences handles PUT /api/v1/preferences with the quiz answers as body
func (h *Handler) SavePreferences(c *gin.Context) {
	if h.preferences == nil {
		notConfigured(c, "Preference service")
		return
	}

	userID, ok := UserIDFromContext(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	var answers domain.QuizAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	prefs, err := h.preferences.Save(c.Request.Context(), userID, &answers)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// handleError maps domain errors to HTTP responses
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, domain.ErrInvalidPreferences):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz answers", "details": err.Error()})
	case errors.Is(err, domain.ErrPreferencesNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Style quiz not completed"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.logger.Error("catalog unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog temporarily unavailable"})
	case errors.Is(err, domain.ErrPreferenceStoreUnavailable):
		h.logger.Error("preference store unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preferences temporarily unavailable"})
	default:
		h.logger.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func notConfigured(c *gin.Context, what string) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": what + " not configured",
	})
}
