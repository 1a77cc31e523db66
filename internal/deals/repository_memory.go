package deals

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository keeps deals in insertion order; later deals win.
type InMemoryRepository struct {
	mu     sync.RWMutex
	deals  []*Deal
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(_ context.Context, deal *Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	deal.ID = r.nextID
	deal.CreatedAt = now
	deal.UpdatedAt = now
	r.nextID++

	cp := *deal
	r.deals = append(r.deals, &cp)
	return nil
}

func (r *InMemoryRepository) ListByMenuItem(_ context.Context, tenantID, menuItemID string) ([]*Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Deal
	for i := len(r.deals) - 1; i >= 0; i-- {
		d := r.deals[i]
		if d.TenantID == tenantID && d.MenuItemID == menuItemID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ActiveForMenuItem(ctx context.Context, tenantID, menuItemID string) (*Deal, error) {
	deals, _ := r.ListByMenuItem(ctx, tenantID, menuItemID)
	for _, d := range deals {
		if d.Status == StatusApproved {
			return d, nil
		}
	}
	return nil, ErrDealNotFound
}

func (r *InMemoryRepository) SetStatus(_ context.Context, tenantID string, dealID int, status string) (*Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.deals {
		if d.ID == dealID && d.TenantID == tenantID {
			d.Status = status
			d.UpdatedAt = time.Now()
			cp := *d
			return &cp, nil
		}
	}
	return nil, ErrDealNotFound
}
