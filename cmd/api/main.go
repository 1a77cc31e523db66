package main

import (
	"context"
	"errors"
	"log"
	"strconv"

	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/deals"
	"storefront/internal/menu"
	"storefront/internal/orders"
	"storefront/internal/router"
	"storefront/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(cfg.DatabaseURL)
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	var receipts orders.Storage
	r2Client, err := storage.NewR2Client(context.Background(), cfg.R2)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Println("⚠️  R2 not configured, receipt archive disabled")
	case err != nil:
		log.Fatal("❌ R2 init failed:", err)
	default:
		receipts = r2Client
	}

	// ───────────────────────── REPOS ─────────────────────────
	menuRepo := menu.NewPostgresRepository(pgDB)
	dealRepo := deals.NewPostgresRepository(pgDB)
	orderRepo := orders.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	menuService := menu.NewService(menuRepo)
	dealService := deals.NewService(dealRepo, menuService)
	checkoutService := checkout.NewService(menuService, dealService, cfg.NotesFormat)
	orderService := orders.NewService(orderRepo, checkoutService, menuService, receipts)

	log.Printf("🧾 Notes format: %s", cfg.NotesFormat)

	// ───────────────────────── ROUTES ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Menu:      menu.NewHandler(menuService),
		MenuAdmin: menu.NewAdminHandler(menuService),
		Deals:     deals.NewHandler(dealService),
		Checkout:  checkout.NewHandler(checkoutService),
		Orders:    orders.NewHandler(orderService),
	}, cfg.CORSOrigins)

	// ───────────────────────── START ─────────────────────────
	addr := ":" + strconv.Itoa(cfg.Port)
	log.Printf("🚀 API running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
