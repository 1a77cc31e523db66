package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := InitSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// schema is applied in order; every statement is idempotent.
var schema = []string{
	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		base_price BIGINT NOT NULL CHECK (base_price >= 0),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	// -------------------------------
	// OPTIONS + CHOICES
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS menu_options (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		label VARCHAR(255) NOT NULL,
		selection_type VARCHAR(20) NOT NULL
			CHECK (selection_type IN ('EXACTLY_ONE', 'AT_MOST_ONE', 'UP_TO_N')),
		max_selections INT NOT NULL DEFAULT 1 CHECK (max_selections >= 1),
		is_required BOOLEAN NOT NULL DEFAULT FALSE,
		position INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS option_items (
		id UUID PRIMARY KEY,
		option_id UUID NOT NULL REFERENCES menu_options(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		additional_price BIGINT NOT NULL DEFAULT 0 CHECK (additional_price >= 0),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		position INT NOT NULL DEFAULT 0
	)`,

	// -------------------------------
	// DEALS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS deals (
		id SERIAL PRIMARY KEY,
		tenant_id UUID NOT NULL,
		menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		type VARCHAR(20) NOT NULL,
		title VARCHAR(255) NOT NULL DEFAULT '',
		discount_value NUMERIC(12,2) NOT NULL,
		status VARCHAR(30) NOT NULL DEFAULT 'APPROVED',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	// -------------------------------
	// ORDERS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		status VARCHAR(30) NOT NULL DEFAULT 'OPEN',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id UUID NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		quantity INT NOT NULL CHECK (quantity >= 1),
		unit_price BIGINT NOT NULL,
		line_total BIGINT NOT NULL,
		notes TEXT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
}

// InitSchema creates or updates the database schema
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
