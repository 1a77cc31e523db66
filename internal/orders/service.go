package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront/internal/checkout"
	"storefront/internal/notes"
	"storefront/internal/options"
)

// Quoter prices and encodes a checkout session.
type Quoter interface {
	Quote(ctx context.Context, tenantID string, req checkout.Request) (*checkout.Line, error)
}

// LookupSource builds the notes lookup for a tenant.
type LookupSource interface {
	Lookup(ctx context.Context, tenantID string) (notes.Lookup, error)
}

// Storage stores an object and returns where it can be fetched.
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	quoter  Quoter
	lookups LookupSource
	store   Storage
}

// NewService wires the order service. store may be nil, in which case
// ArchiveReceipt returns ErrArchiveDisabled.
func NewService(repo Repository, quoter Quoter, lookups LookupSource, store Storage) *Service {
	return &Service{
		repo:    repo,
		quoter:  quoter,
		lookups: lookups,
		store:   store,
	}
}

// --------------------------------------------------
// Orders
// --------------------------------------------------

func (s *Service) CreateOrder(ctx context.Context, tenantID string) (*Order, error) {
	order := &Order{
		ID:       uuid.New().String(),
		TenantID: tenantID,
		Status:   StatusOpen,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddLine quotes the checkout session and stores the resulting line.
func (s *Service) AddLine(ctx context.Context, tenantID, orderID string, req checkout.Request) (*Line, error) {
	order, err := s.repo.GetOrder(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != StatusOpen {
		return nil, ErrOrderClosed
	}

	quoted, err := s.quoter.Quote(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}

	line := &Line{
		ID:         quoted.ID,
		OrderID:    order.ID,
		MenuItemID: quoted.MenuItemID,
		ItemName:   quoted.ItemName,
		Quantity:   quoted.Quantity,
		UnitPrice:  quoted.UnitPrice,
		LineTotal:  quoted.LineTotal,
		Notes:      quoted.Notes,
	}
	if err := s.repo.AddLine(ctx, line); err != nil {
		return nil, err
	}

	log.Printf("[ORDERS] line %s added to order %s (qty %d, total %d)",
		line.ID, order.ID, line.Quantity, line.LineTotal)
	return line, nil
}

// --------------------------------------------------
// Display
// --------------------------------------------------

// Lines returns the order's lines with decoded notes. Decoding never
// fails; a corrupt value only degrades its own line.
func (s *Service) Lines(ctx context.Context, tenantID, orderID string) ([]DecodedLine, error) {
	if _, err := s.repo.GetOrder(ctx, tenantID, orderID); err != nil {
		return nil, err
	}

	lines, err := s.repo.ListLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lookup, err := s.lookups.Lookup(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]DecodedLine, 0, len(lines))
	for _, l := range lines {
		summary := notes.DecodeNullable(l.Notes, lookup)
		if summary.Strategy == notes.StrategyPlain {
			log.Printf("[ORDERS] line %s notes not in a known format, shown verbatim", l.ID)
		}
		out = append(out, DecodedLine{
			Line:    *l,
			Details: summary,
			Display: summary.Lines(),
		})
	}
	return out, nil
}

// --------------------------------------------------
// Receipt archive
// --------------------------------------------------

// ArchiveReceipt uploads the decoded order as JSON and returns its URL.
func (s *Service) ArchiveReceipt(ctx context.Context, tenantID, orderID string) (string, error) {
	if s.store == nil {
		return "", ErrArchiveDisabled
	}

	lines, err := s.Lines(ctx, tenantID, orderID)
	if err != nil {
		return "", err
	}

	receipt := Receipt{
		OrderID:     orderID,
		TenantID:    tenantID,
		Lines:       lines,
		GeneratedAt: time.Now().UTC(),
	}
	var total options.Money
	for _, l := range lines {
		total += l.LineTotal
	}
	receipt.Total = total

	body, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return "", err
	}

	key := ReceiptKey(tenantID, orderID)
	url, err := s.store.Put(ctx, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return "", fmt.Errorf("upload receipt: %w", err)
	}

	log.Printf("[ORDERS] receipt archived: %s", key)
	return url, nil
}

func ReceiptKey(tenantID, orderID string) string {
	return fmt.Sprintf("receipts/%s/%s.json", tenantID, orderID)
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

// Audit decodes every stored note of the tenant and counts which
// strategy read it.
func (s *Service) Audit(ctx context.Context, tenantID string) (*Audit, error) {
	stored, err := s.repo.ListAllNotes(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	lookup, err := s.lookups.Lookup(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	audit := &Audit{
		TenantID: tenantID,
		Counts:   make(map[notes.Strategy]int),
	}
	for _, n := range stored {
		summary := notes.DecodeNotes(n.Notes, lookup)
		audit.Total++
		audit.Counts[summary.Strategy]++
		if summary.Strategy == notes.StrategyPlain {
			audit.Unreadable = append(audit.Unreadable, n.LineID)
		}
	}
	return audit, nil
}
