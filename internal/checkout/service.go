package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/deals"
	"storefront/internal/menu"
	"storefront/internal/notes"
	"storefront/internal/options"
	"storefront/internal/pricing"
)

// Catalogs is the part of the menu service checkout reads.
type Catalogs interface {
	Item(ctx context.Context, tenantID, menuItemID string) (*menu.MenuItem, error)
	Catalog(ctx context.Context, tenantID, menuItemID string) (options.Catalog, error)
}

// Discounts returns the approved deal of an item, nil when none.
type Discounts interface {
	ActiveDiscount(ctx context.Context, tenantID, menuItemID string) (*deals.Deal, error)
}

type Service struct {
	catalogs  Catalogs
	discounts Discounts
	format    notes.Format
}

func NewService(catalogs Catalogs, discounts Discounts, format notes.Format) *Service {
	return &Service{
		catalogs:  catalogs,
		discounts: discounts,
		format:    format,
	}
}

// --------------------------------------------------
// Quote
// --------------------------------------------------

// Quote replays the session, blocks on unsatisfied required options,
// prices the line and encodes its notes. Nothing is persisted.
func (s *Service) Quote(ctx context.Context, tenantID string, req Request) (*Line, error) {
	if req.Quantity < 1 || req.Quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}

	item, err := s.catalogs.Item(ctx, tenantID, req.MenuItemID)
	if err != nil {
		return nil, err
	}
	cat, err := s.catalogs.Catalog(ctx, tenantID, req.MenuItemID)
	if err != nil {
		return nil, err
	}

	set, err := Replay(cat, req.Events)
	if err != nil {
		return nil, err
	}
	if err := options.ValidateRequired(set, cat.OptionList()); err != nil {
		return nil, err
	}

	deal, err := s.discounts.ActiveDiscount(ctx, tenantID, req.MenuItemID)
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.Quote(pricing.LineItem{
		BaseUnitPrice: item.BasePrice,
		Selection:     set,
		Quantity:      req.Quantity,
		Note:          req.Note,
	}, deal.Discount())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
	}

	encoded, err := s.format.Encode(set, req.Note)
	if err != nil {
		return nil, err
	}

	return &Line{
		ID:         uuid.New().String(),
		MenuItemID: item.ID,
		ItemName:   item.Name,
		Quantity:   req.Quantity,
		UnitPrice:  breakdown.UnitPrice,
		LineTotal:  breakdown.Total,
		Notes:      notes.Nullable(encoded),
		Selection:  set,
		Pricing:    breakdown,
	}, nil
}

// --------------------------------------------------
// Selectable
// --------------------------------------------------

// Selectable returns the item snapshot with every choice flagged for the
// selection reached by replaying events.
func (s *Service) Selectable(ctx context.Context, tenantID, menuItemID string, events []Event) (*menu.Snapshot, error) {
	item, err := s.catalogs.Item(ctx, tenantID, menuItemID)
	if err != nil {
		return nil, err
	}
	cat, err := s.catalogs.Catalog(ctx, tenantID, menuItemID)
	if err != nil {
		return nil, err
	}

	set, err := Replay(cat, events)
	if err != nil {
		return nil, err
	}

	snap := menu.BuildSnapshot(*item, cat, set)
	return &snap, nil
}
