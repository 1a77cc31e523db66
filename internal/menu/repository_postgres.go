package menu

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
// ITEMS
// --------------------------------------------------

func (r *PostgresRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, tenant_id, name, base_price)
		VALUES ($1, $2, $3, $4)
	`, item.ID, item.TenantID, item.Name, int64(item.BasePrice))
	return err
}

func (r *PostgresRepository) GetItem(
	ctx context.Context,
	tenantID string,
	menuItemID string,
) (*MenuItem, error) {

	var (
		item  MenuItem
		price int64
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, tenant_id, name, base_price
		FROM menu_items
		WHERE id = $1 AND tenant_id = $2
	`, menuItemID, tenantID).Scan(&item.ID, &item.TenantID, &item.Name, &price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	item.BasePrice = options.Money(price)
	return &item, nil
}

// --------------------------------------------------
// CATALOG
// --------------------------------------------------

const catalogSelect = `
	SELECT
		o.id,
		o.menu_item_id,
		o.label,
		o.selection_type,
		o.max_selections,
		o.is_required,
		i.id,
		i.name,
		i.additional_price,
		i.is_available
	FROM menu_options o
	LEFT JOIN option_items i
	  ON i.option_id = o.id
`

func (r *PostgresRepository) LoadCatalog(
	ctx context.Context,
	tenantID string,
	menuItemID string,
) (options.Catalog, error) {

	if _, err := r.GetItem(ctx, tenantID, menuItemID); err != nil {
		return options.Catalog{}, err
	}

	rows, err := r.db.Query(ctx, catalogSelect+`
		WHERE o.menu_item_id = $1 AND o.tenant_id = $2
		ORDER BY o.position, o.id, i.position, i.id
	`, menuItemID, tenantID)
	if err != nil {
		return options.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	opts, err := scanOptions(rows)
	if err != nil {
		return options.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	return options.Catalog{MenuItemID: menuItemID, Options: opts}, nil
}

func (r *PostgresRepository) ListTenantOptions(
	ctx context.Context,
	tenantID string,
) ([]options.OptionWithChoices, error) {

	rows, err := r.db.Query(ctx, catalogSelect+`
		WHERE o.tenant_id = $1
		ORDER BY o.menu_item_id, o.position, o.id, i.position, i.id
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list tenant options: %w", err)
	}

	return scanOptions(rows)
}

// scanOptions folds the option/choice join back into nested form.
// Rows must arrive grouped by option.
func scanOptions(rows pgx.Rows) ([]options.OptionWithChoices, error) {
	defer rows.Close()

	var out []options.OptionWithChoices

	for rows.Next() {
		var (
			o         options.Option
			selType   string
			choiceID  *string
			name      *string
			price     *int64
			available *bool
		)
		if err := rows.Scan(
			&o.ID,
			&o.MenuItemID,
			&o.Label,
			&selType,
			&o.MaxSelections,
			&o.IsRequired,
			&choiceID,
			&name,
			&price,
			&available,
		); err != nil {
			return nil, err
		}
		o.SelectionType = options.SelectionType(selType)

		if len(out) == 0 || out[len(out)-1].ID != o.ID {
			out = append(out, options.OptionWithChoices{Option: o})
		}

		// LEFT JOIN: option without choices
		if choiceID == nil {
			continue
		}

		last := &out[len(out)-1]
		last.Choices = append(last.Choices, options.Choice{
			ID:              *choiceID,
			OptionID:        o.ID,
			Name:            deref(name),
			AdditionalPrice: options.Money(derefInt(price)),
			IsAvailable:     available != nil && *available,
		})
	}

	return out, rows.Err()
}

// --------------------------------------------------
// ADMIN EDITS
// --------------------------------------------------

func (r *PostgresRepository) CreateOption(
	ctx context.Context,
	tenantID string,
	o *options.Option,
) error {

	cmd, err := r.db.Exec(ctx, `
		INSERT INTO menu_options (
			id,
			tenant_id,
			menu_item_id,
			label,
			selection_type,
			max_selections,
			is_required,
			position
		)
		SELECT $1, $2, $3, $4, $5, $6, $7,
		       COALESCE((SELECT MAX(position) + 1 FROM menu_options WHERE menu_item_id = $3), 0)
		WHERE EXISTS (SELECT 1 FROM menu_items WHERE id = $3 AND tenant_id = $2)
	`,
		o.ID,
		tenantID,
		o.MenuItemID,
		o.Label,
		string(o.SelectionType),
		o.MaxSelections,
		o.IsRequired,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *PostgresRepository) CreateChoice(
	ctx context.Context,
	tenantID string,
	c *options.Choice,
) error {

	cmd, err := r.db.Exec(ctx, `
		INSERT INTO option_items (
			id,
			option_id,
			name,
			additional_price,
			is_available,
			position
		)
		SELECT $1, $2, $3, $4, $5,
		       COALESCE((SELECT MAX(position) + 1 FROM option_items WHERE option_id = $2), 0)
		WHERE EXISTS (SELECT 1 FROM menu_options WHERE id = $2 AND tenant_id = $6)
	`,
		c.ID,
		c.OptionID,
		c.Name,
		int64(c.AdditionalPrice),
		c.IsAvailable,
		tenantID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOptionNotFound
	}
	return nil
}

func (r *PostgresRepository) SetChoiceAvailability(
	ctx context.Context,
	tenantID string,
	choiceID string,
	available bool,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE option_items i
		SET is_available = $3
		FROM menu_options o
		WHERE i.option_id = o.id
		  AND i.id = $1
		  AND o.tenant_id = $2
	`, choiceID, tenantID, available)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrChoiceNotFound
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
