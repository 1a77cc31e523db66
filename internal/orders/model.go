package orders

import (
	"errors"
	"time"

	"storefront/internal/notes"
	"storefront/internal/options"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderClosed     = errors.New("order is not open")
	ErrArchiveDisabled = errors.New("receipt archive is not configured")
)

const StatusOpen = "OPEN"

type Order struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Line is a stored order line. Notes holds the encoded options and
// customer note; nil when there was nothing to record.
type Line struct {
	ID         string        `json:"id"`
	OrderID    string        `json:"order_id"`
	MenuItemID string        `json:"menu_item_id"`
	ItemName   string        `json:"item_name"`
	Quantity   int           `json:"quantity"`
	UnitPrice  options.Money `json:"unit_price"`
	LineTotal  options.Money `json:"line_total"`
	Notes      *string       `json:"notes"`
	CreatedAt  time.Time     `json:"created_at"`
}

// DecodedLine is a Line with its notes turned back into display lines.
type DecodedLine struct {
	Line
	Details notes.Summary `json:"details"`
	Display []notes.Pair  `json:"display"`
}

// StoredNote is one non-null notes value of a tenant, for auditing.
type StoredNote struct {
	LineID  string
	OrderID string
	Notes   string
}

// Receipt is the archived form of an order.
type Receipt struct {
	OrderID     string        `json:"order_id"`
	TenantID    string        `json:"tenant_id"`
	Lines       []DecodedLine `json:"lines"`
	Total       options.Money `json:"total"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Audit counts stored notes per decoding strategy.
type Audit struct {
	TenantID string                 `json:"tenant_id"`
	Total    int                    `json:"total"`
	Counts   map[notes.Strategy]int `json:"counts"`
	// Line ids that only the plain fallback could read
	Unreadable []string `json:"unreadable,omitempty"`
}
