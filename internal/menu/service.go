package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/notes"
	"storefront/internal/options"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Items
// --------------------------------------------------

func (s *Service) CreateItem(
	ctx context.Context,
	tenantID string,
	name string,
	basePrice options.Money,
) (*MenuItem, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if basePrice < 0 {
		return nil, fmt.Errorf("%w: base_price must not be negative", ErrInvalid)
	}

	item := &MenuItem{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		BasePrice: basePrice,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Item(ctx context.Context, tenantID, menuItemID string) (*MenuItem, error) {
	return s.repo.GetItem(ctx, tenantID, menuItemID)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

// Catalog returns the checkout snapshot: unavailable choices removed.
func (s *Service) Catalog(ctx context.Context, tenantID, menuItemID string) (options.Catalog, error) {
	cat, err := s.repo.LoadCatalog(ctx, tenantID, menuItemID)
	if err != nil {
		return options.Catalog{}, err
	}
	return cat.Snapshot(), nil
}

// Snapshot is the storefront view of an item with nothing selected yet.
func (s *Service) Snapshot(ctx context.Context, tenantID, menuItemID string) (*Snapshot, error) {
	item, err := s.repo.GetItem(ctx, tenantID, menuItemID)
	if err != nil {
		return nil, err
	}
	cat, err := s.Catalog(ctx, tenantID, menuItemID)
	if err != nil {
		return nil, err
	}
	snap := BuildSnapshot(*item, cat, options.NewSelectionSet())
	return &snap, nil
}

// BuildSnapshot marks each offered choice with whether the UI may offer it
// given the current selection.
func BuildSnapshot(item MenuItem, cat options.Catalog, set options.SelectionSet) Snapshot {
	snap := Snapshot{Item: item, Options: make([]SnapshotOption, 0, len(cat.Options))}
	for _, o := range cat.Options {
		so := SnapshotOption{Option: o.Option, Choices: make([]SnapshotChoice, 0, len(o.Choices))}
		for _, c := range o.Choices {
			so.Choices = append(so.Choices, SnapshotChoice{
				Choice:     c,
				Selectable: options.IsChoiceSelectable(set, o.Option, c),
			})
		}
		snap.Options = append(snap.Options, so)
	}
	return snap
}

// Lookup builds the notes decoder lookup over every option of the tenant.
// Unavailable choices stay in: old orders reference them.
func (s *Service) Lookup(ctx context.Context, tenantID string) (notes.Lookup, error) {
	opts, err := s.repo.ListTenantOptions(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return notes.NewLookup(options.Catalog{Options: opts}), nil
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

func (s *Service) AddOption(
	ctx context.Context,
	tenantID string,
	option options.Option,
) (*options.Option, error) {

	if err := NormalizeOption(&option); err != nil {
		return nil, err
	}
	option.ID = uuid.New().String()

	if err := s.repo.CreateOption(ctx, tenantID, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

func (s *Service) AddChoice(
	ctx context.Context,
	tenantID string,
	choice options.Choice,
) (*options.Choice, error) {

	if err := NormalizeChoice(&choice); err != nil {
		return nil, err
	}
	choice.ID = uuid.New().String()

	if err := s.repo.CreateChoice(ctx, tenantID, &choice); err != nil {
		return nil, err
	}
	return &choice, nil
}

func (s *Service) SetChoiceAvailability(
	ctx context.Context,
	tenantID string,
	choiceID string,
	available bool,
) error {
	return s.repo.SetChoiceAvailability(ctx, tenantID, choiceID, available)
}
