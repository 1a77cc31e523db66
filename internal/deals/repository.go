package deals

import "context"

type Repository interface {
	Create(ctx context.Context, deal *Deal) error
	ListByMenuItem(ctx context.Context, tenantID, menuItemID string) ([]*Deal, error)

	// Latest APPROVED deal of the item, ErrDealNotFound if there is none
	ActiveForMenuItem(ctx context.Context, tenantID, menuItemID string) (*Deal, error)

	SetStatus(ctx context.Context, tenantID string, dealID int, status string) (*Deal, error)
}
