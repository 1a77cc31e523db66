package orders

import "context"

// Repository defines all database operations for orders
type Repository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrder(ctx context.Context, tenantID, orderID string) (*Order, error)

	AddLine(ctx context.Context, line *Line) error
	ListLines(ctx context.Context, orderID string) ([]*Line, error)

	// Every non-null notes value stored for the tenant
	ListAllNotes(ctx context.Context, tenantID string) ([]StoredNote, error)
}
