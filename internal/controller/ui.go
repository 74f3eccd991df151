// Package controller provides output renderers for scored variants.
package controller

import (
	"context"
	"os"

	m "vscore.dev/pkg/vscore/internal/model"
)

// UI defines the interface for displaying scored variants.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	ShowScores(ctx context.Context, source m.Path, scored []m.ScoredVariant) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
