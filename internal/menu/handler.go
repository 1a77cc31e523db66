package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/middleware"
	"storefront/internal/options"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// GET /menu-items/:id/options
// --------------------------------------------------
func (h *Handler) Options(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := h.service.Snapshot(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// --------------------------------------------------
// POST /admin/menu-items
// --------------------------------------------------
func (h *AdminHandler) CreateItem(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Name      string        `json:"name"`
		BasePrice options.Money `json:"base_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), tenantID, req.Name, req.BasePrice)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// POST /admin/menu-items/:id/options
// --------------------------------------------------
func (h *AdminHandler) CreateOption(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req options.Option
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.MenuItemID = c.Param("id")

	option, err := h.service.AddOption(c.Request.Context(), tenantID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, option)
}

// --------------------------------------------------
// POST /admin/options/:id/choices
// --------------------------------------------------
func (h *AdminHandler) CreateChoice(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Name            string        `json:"name"`
		AdditionalPrice options.Money `json:"additional_price"`
		IsAvailable     *bool         `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	choice := options.Choice{
		OptionID:        c.Param("id"),
		Name:            req.Name,
		AdditionalPrice: req.AdditionalPrice,
		IsAvailable:     req.IsAvailable == nil || *req.IsAvailable,
	}

	created, err := h.service.AddChoice(c.Request.Context(), tenantID, choice)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// --------------------------------------------------
// PATCH /admin/choices/:id/availability
// --------------------------------------------------
func (h *AdminHandler) SetAvailability(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_available is required"})
		return
	}

	err := h.service.SetChoiceAvailability(c.Request.Context(), tenantID, c.Param("id"), *req.IsAvailable)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"choice_id":    c.Param("id"),
		"is_available": *req.IsAvailable,
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMenuItemNotFound),
		errors.Is(err, ErrOptionNotFound),
		errors.Is(err, ErrChoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
