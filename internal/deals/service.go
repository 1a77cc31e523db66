package deals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"storefront/internal/menu"
)

// ItemReader is the slice of the menu service deals need.
type ItemReader interface {
	Item(ctx context.Context, tenantID, menuItemID string) (*menu.MenuItem, error)
}

type Service struct {
	repo  Repository
	items ItemReader
}

func NewService(repo Repository, items ItemReader) *Service {
	return &Service{repo: repo, items: items}
}

// CreateDeal attaches a deal to a menu item of the tenant. Deals created
// without a status are approved straight away.
func (s *Service) CreateDeal(ctx context.Context, tenantID string, deal *Deal) error {
	if _, err := s.items.Item(ctx, tenantID, deal.MenuItemID); err != nil {
		return err
	}

	deal.TenantID = tenantID
	deal.Type = strings.ToUpper(strings.TrimSpace(deal.Type))
	deal.Title = strings.TrimSpace(deal.Title)

	if deal.Status == "" {
		deal.Status = StatusApproved
	}
	if !validStatus(deal.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDeal, deal.Status)
	}

	if math.IsNaN(deal.DiscountValue) || math.IsInf(deal.DiscountValue, 0) || deal.DiscountValue < 0 {
		return fmt.Errorf("%w: discount_value must be a non-negative number", ErrInvalidDeal)
	}

	switch deal.Type {
	case TypePercentage:
		if deal.DiscountValue > 100 {
			return fmt.Errorf("%w: percentage must not exceed 100", ErrInvalidDeal)
		}
	case TypeFixedAmount, TypeFlat, TypeCombo:
	default:
		return fmt.Errorf("%w: type must be PERCENTAGE, FIXED_AMOUNT or COMBO", ErrInvalidDeal)
	}

	return s.repo.Create(ctx, deal)
}

func (s *Service) List(ctx context.Context, tenantID, menuItemID string) ([]*Deal, error) {
	return s.repo.ListByMenuItem(ctx, tenantID, menuItemID)
}

// ActiveDiscount returns the discount checkout applies to the item,
// or nil when no approved deal exists.
func (s *Service) ActiveDiscount(ctx context.Context, tenantID, menuItemID string) (*Deal, error) {
	deal, err := s.repo.ActiveForMenuItem(ctx, tenantID, menuItemID)
	if errors.Is(err, ErrDealNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *Service) SetStatus(ctx context.Context, tenantID string, dealID int, status string) (*Deal, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDeal, status)
	}
	return s.repo.SetStatus(ctx, tenantID, dealID, status)
}
