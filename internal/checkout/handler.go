package checkout

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/menu"
	"storefront/internal/middleware"
	"storefront/internal/options"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /checkout/quote
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	line, err := h.service.Quote(c.Request.Context(), tenantID, req)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, line)
}

// --------------------------------------------------
// POST /checkout/selectable
// --------------------------------------------------
func (h *Handler) Selectable(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		MenuItemID string  `json:"menu_item_id"`
		Events     []Event `json:"events"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.Selectable(c.Request.Context(), tenantID, req.MenuItemID, req.Events)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// WriteError maps checkout failures to HTTP responses. A missing
// required option is a 422 that names every unsatisfied option.
func WriteError(c *gin.Context, err error) {
	var missing *options.MissingRequiredOptionError

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":           err.Error(),
			"missing_options": missing.Missing,
		})
	case errors.Is(err, options.ErrUnknownOption),
		errors.Is(err, options.ErrUnknownChoice),
		errors.Is(err, ErrUnknownAction),
		errors.Is(err, ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, menu.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[CHECKOUT] unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
	}
}
