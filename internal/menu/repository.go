package menu

import (
	"context"

	"storefront/internal/options"
)

// Repository defines all database operations for menu catalogs
type Repository interface {

	// -------------------------------
	// Items
	// -------------------------------

	CreateItem(ctx context.Context, item *MenuItem) error
	GetItem(ctx context.Context, tenantID, menuItemID string) (*MenuItem, error)

	// -------------------------------
	// Catalog (checkout + notes decoding)
	// -------------------------------

	// Options and choices of one item in display order,
	// unavailable choices included
	LoadCatalog(ctx context.Context, tenantID, menuItemID string) (options.Catalog, error)

	// Every option of the tenant, for resolving stored notes
	ListTenantOptions(ctx context.Context, tenantID string) ([]options.OptionWithChoices, error)

	// -------------------------------
	// Admin edits
	// -------------------------------

	CreateOption(ctx context.Context, tenantID string, option *options.Option) error
	CreateChoice(ctx context.Context, tenantID string, choice *options.Choice) error
	SetChoiceAvailability(ctx context.Context, tenantID, choiceID string, available bool) error
}
