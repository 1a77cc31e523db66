package options

import (
	"errors"
	"strings"
)

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrUnknownChoice = errors.New("unknown choice for option")
)

// MissingOption identifies a required option left empty.
type MissingOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MissingRequiredOptionError is returned by ValidateRequired and lists
// every unsatisfied option in catalog order.
type MissingRequiredOptionError struct {
	Missing []MissingOption
}

func (e *MissingRequiredOptionError) Error() string {
	labels := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		labels = append(labels, m.Label)
	}
	return "missing required options: " + strings.Join(labels, ", ")
}
