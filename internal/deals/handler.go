package deals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/menu"
	"storefront/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /admin/menu-items/:id/deals
// --------------------------------------------------
//

func (h *Handler) CreateDeal() gin.HandlerFunc {
	return func(c *gin.Context) {

		tenantID, ok := middleware.TenantID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var deal Deal
		if err := c.ShouldBindJSON(&deal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		// 🔒 Item comes from the path, never the body
		deal.MenuItemID = c.Param("id")

		if err := h.service.CreateDeal(c.Request.Context(), tenantID, &deal); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "deal created",
			"deal":    deal,
		})
	}
}

//
// --------------------------------------------------
// GET /admin/menu-items/:id/deals
// --------------------------------------------------
//

func (h *Handler) ListDeals() gin.HandlerFunc {
	return func(c *gin.Context) {

		tenantID, ok := middleware.TenantID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		deals, err := h.service.List(c.Request.Context(), tenantID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if deals == nil {
			deals = []*Deal{}
		}

		c.JSON(http.StatusOK, gin.H{"deals": deals})
	}
}

//
// --------------------------------------------------
// PATCH /admin/deals/:id/status
// --------------------------------------------------
//

func (h *Handler) SetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {

		tenantID, ok := middleware.TenantID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		dealID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deal id"})
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		deal, err := h.service.SetStatus(c.Request.Context(), tenantID, dealID, req.Status)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, deal)
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDealNotFound), errors.Is(err, menu.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidDeal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
