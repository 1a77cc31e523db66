package menu

import (
	"errors"

	"storefront/internal/options"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrChoiceNotFound   = errors.New("choice not found")
	ErrInvalid          = errors.New("invalid input")
)

// MenuItem is the sellable product an option catalog hangs off.
type MenuItem struct {
	ID        string        `json:"id"`
	TenantID  string        `json:"tenant_id"`
	Name      string        `json:"name"`
	BasePrice options.Money `json:"base_price"`
}

// SnapshotChoice is a choice as offered to the storefront.
type SnapshotChoice struct {
	options.Choice
	Selectable bool `json:"selectable"`
}

type SnapshotOption struct {
	options.Option
	Choices []SnapshotChoice `json:"choices"`
}

// Snapshot is the storefront view of one menu item.
type Snapshot struct {
	Item    MenuItem         `json:"item"`
	Options []SnapshotOption `json:"options"`
}
