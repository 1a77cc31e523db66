package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/options"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// ORDERS
// --------------------------------------------------

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *Order) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO orders (id, tenant_id, status)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, order.ID, order.TenantID, order.Status).Scan(&order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, tenantID, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, tenant_id, status, created_at
		FROM orders
		WHERE id = $1 AND tenant_id = $2
	`, orderID, tenantID).Scan(&o.ID, &o.TenantID, &o.Status, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// --------------------------------------------------
// LINES
// --------------------------------------------------

func (r *PostgresRepository) AddLine(ctx context.Context, line *Line) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO order_items (
			id,
			order_id,
			menu_item_id,
			item_name,
			quantity,
			unit_price,
			line_total,
			notes
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`,
		line.ID,
		line.OrderID,
		line.MenuItemID,
		line.ItemName,
		line.Quantity,
		int64(line.UnitPrice),
		int64(line.LineTotal),
		line.Notes,
	).Scan(&line.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListLines(ctx context.Context, orderID string) ([]*Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, menu_item_id, item_name, quantity,
		       unit_price, line_total, notes, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	var lines []*Line
	for rows.Next() {
		var (
			l           Line
			unit, total int64
		)
		if err := rows.Scan(
			&l.ID,
			&l.OrderID,
			&l.MenuItemID,
			&l.ItemName,
			&l.Quantity,
			&unit,
			&total,
			&l.Notes,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		l.UnitPrice = options.Money(unit)
		l.LineTotal = options.Money(total)
		lines = append(lines, &l)
	}

	return lines, rows.Err()
}

func (r *PostgresRepository) ListAllNotes(ctx context.Context, tenantID string) ([]StoredNote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.notes
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.tenant_id = $1 AND oi.notes IS NOT NULL
		ORDER BY oi.created_at
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var out []StoredNote
	for rows.Next() {
		var n StoredNote
		if err := rows.Scan(&n.LineID, &n.OrderID, &n.Notes); err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, rows.Err()
}
