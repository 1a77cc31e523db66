package deals

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const dealColumns = `
	id,
	tenant_id,
	menu_item_id,
	type,
	title,
	discount_value,
	status,
	created_at,
	updated_at
`

func scanDeal(row pgx.Row) (*Deal, error) {
	var d Deal
	if err := row.Scan(
		&d.ID,
		&d.TenantID,
		&d.MenuItemID,
		&d.Type,
		&d.Title,
		&d.DiscountValue,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return &d, nil
}

// --------------------------------------------------
// Create Deal
// --------------------------------------------------
func (r *PostgresRepository) Create(
	ctx context.Context,
	deal *Deal,
) error {

	return r.db.QueryRow(ctx, `
		INSERT INTO deals (
			tenant_id,
			menu_item_id,
			type,
			title,
			discount_value,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at
	`,
		deal.TenantID,
		deal.MenuItemID,
		deal.Type,
		deal.Title,
		deal.DiscountValue,
		deal.Status,
	).Scan(
		&deal.ID,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
}

// --------------------------------------------------
// List Deals by Menu Item
// --------------------------------------------------
func (r *PostgresRepository) ListByMenuItem(
	ctx context.Context,
	tenantID string,
	menuItemID string,
) ([]*Deal, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+dealColumns+`
		FROM deals
		WHERE tenant_id = $1 AND menu_item_id = $2
		ORDER BY created_at DESC, id DESC
	`, tenantID, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []*Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}

	return deals, rows.Err()
}

// --------------------------------------------------
// Active Deal (checkout)
// --------------------------------------------------
func (r *PostgresRepository) ActiveForMenuItem(
	ctx context.Context,
	tenantID string,
	menuItemID string,
) (*Deal, error) {

	return scanDeal(r.db.QueryRow(ctx, `
		SELECT `+dealColumns+`
		FROM deals
		WHERE tenant_id = $1
		  AND menu_item_id = $2
		  AND status = $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, tenantID, menuItemID, StatusApproved))
}

// --------------------------------------------------
// Approval workflow
// --------------------------------------------------
func (r *PostgresRepository) SetStatus(
	ctx context.Context,
	tenantID string,
	dealID int,
	status string,
) (*Deal, error) {

	return scanDeal(r.db.QueryRow(ctx, `
		UPDATE deals
		SET status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND tenant_id = $2
		RETURNING `+dealColumns,
		dealID, tenantID, status))
}
