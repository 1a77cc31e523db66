package menu

import (
	"context"
	"sync"

	"storefront/internal/options"
)

// InMemoryRepository backs tests and local demos.
type InMemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]*MenuItem
	options []options.OptionWithChoices
	owner   map[string]string // option id -> tenant id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*MenuItem),
		owner: make(map[string]string),
	}
}

func (r *InMemoryRepository) CreateItem(_ context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetItem(_ context.Context, tenantID, menuItemID string) (*MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[menuItemID]
	if !ok || item.TenantID != tenantID {
		return nil, ErrMenuItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *InMemoryRepository) LoadCatalog(ctx context.Context, tenantID, menuItemID string) (options.Catalog, error) {
	if _, err := r.GetItem(ctx, tenantID, menuItemID); err != nil {
		return options.Catalog{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cat := options.Catalog{MenuItemID: menuItemID}
	for _, o := range r.options {
		if o.MenuItemID == menuItemID {
			cat.Options = append(cat.Options, cloneOption(o))
		}
	}
	return cat, nil
}

func (r *InMemoryRepository) ListTenantOptions(_ context.Context, tenantID string) ([]options.OptionWithChoices, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []options.OptionWithChoices
	for _, o := range r.options {
		if r.owner[o.ID] == tenantID {
			out = append(out, cloneOption(o))
		}
	}
	return out, nil
}

func (r *InMemoryRepository) CreateOption(_ context.Context, tenantID string, o *options.Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[o.MenuItemID]
	if !ok || item.TenantID != tenantID {
		return ErrMenuItemNotFound
	}
	r.options = append(r.options, options.OptionWithChoices{Option: *o})
	r.owner[o.ID] = tenantID
	return nil
}

func (r *InMemoryRepository) CreateChoice(_ context.Context, tenantID string, c *options.Choice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.options {
		if r.options[i].ID == c.OptionID && r.owner[c.OptionID] == tenantID {
			r.options[i].Choices = append(r.options[i].Choices, *c)
			return nil
		}
	}
	return ErrOptionNotFound
}

func (r *InMemoryRepository) SetChoiceAvailability(_ context.Context, tenantID, choiceID string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.options {
		if r.owner[r.options[i].ID] != tenantID {
			continue
		}
		for j := range r.options[i].Choices {
			if r.options[i].Choices[j].ID == choiceID {
				r.options[i].Choices[j].IsAvailable = available
				return nil
			}
		}
	}
	return ErrChoiceNotFound
}

func cloneOption(o options.OptionWithChoices) options.OptionWithChoices {
	cp := o
	cp.Choices = append([]options.Choice(nil), o.Choices...)
	return cp
}
