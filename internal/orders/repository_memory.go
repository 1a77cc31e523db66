package orders

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*Order
	lines  []*Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]*Order)}
}

func (r *InMemoryRepository) CreateOrder(_ context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.CreatedAt = time.Now()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetOrder(_ context.Context, tenantID, orderID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok || o.TenantID != tenantID {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *InMemoryRepository) AddLine(_ context.Context, line *Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[line.OrderID]; !ok {
		return ErrOrderNotFound
	}
	line.CreatedAt = time.Now()
	cp := *line
	r.lines = append(r.lines, &cp)
	return nil
}

func (r *InMemoryRepository) ListLines(_ context.Context, orderID string) ([]*Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Line
	for _, l := range r.lines {
		if l.OrderID == orderID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAllNotes(_ context.Context, tenantID string) ([]StoredNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []StoredNote
	for _, l := range r.lines {
		o := r.orders[l.OrderID]
		if o == nil || o.TenantID != tenantID || l.Notes == nil {
			continue
		}
		out = append(out, StoredNote{LineID: l.ID, OrderID: l.OrderID, Notes: *l.Notes})
	}
	return out, nil
}
