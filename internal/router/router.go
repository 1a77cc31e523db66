package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/checkout"
	"storefront/internal/deals"
	"storefront/internal/menu"
	"storefront/internal/middleware"
	"storefront/internal/orders"
)

// Handlers are the HTTP surfaces the engine mounts.
type Handlers struct {
	Menu      *menu.Handler
	MenuAdmin *menu.AdminHandler
	Deals     *deals.Handler
	Checkout  *checkout.Handler
	Orders    *orders.Handler
}

func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── STOREFRONT ─────────────────────────
	store := r.Group("")
	store.Use(middleware.AuthMiddleware())
	{
		store.GET("/menu-items/:id/options", h.Menu.Options)

		store.POST("/checkout/quote", h.Checkout.Quote)
		store.POST("/checkout/selectable", h.Checkout.Selectable)

		store.POST("/orders", h.Orders.CreateOrder)
		store.POST("/orders/:id/lines", h.Orders.AddLine)
		store.GET("/orders/:id/lines", h.Orders.ListLines)
		store.POST("/orders/:id/receipt", h.Orders.ArchiveReceipt)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Catalog
		admin.POST("/menu-items", h.MenuAdmin.CreateItem)
		admin.POST("/menu-items/:id/options", h.MenuAdmin.CreateOption)
		admin.POST("/options/:id/choices", h.MenuAdmin.CreateChoice)
		admin.PATCH("/choices/:id/availability", h.MenuAdmin.SetAvailability)

		// Deals
		admin.POST("/menu-items/:id/deals", h.Deals.CreateDeal())
		admin.GET("/menu-items/:id/deals", h.Deals.ListDeals())
		admin.PATCH("/deals/:id/status", h.Deals.SetStatus())

		// Stored notes health
		admin.GET("/notes/audit", h.Orders.Audit)
	}

	return r
}
