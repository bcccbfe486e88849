// Package progress wraps epoch iteration with a terminal progress bar.
//
// The bar is purely cosmetic: it never touches training state, and a
// disabled bar degrades to no-ops so headless callers pay nothing.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bar reports epoch progress on stderr. The zero value and a disabled bar
// are both safe no-ops.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewEpochBar creates a progress bar spanning epochs iterations. When
// enabled is false the returned bar does nothing.
func NewEpochBar(epochs int, enabled bool) *Bar {
	if !enabled {
		return &Bar{}
	}
	return &Bar{
		bar: progressbar.NewOptions(epochs,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("training"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Step advances the bar by one epoch.
func (b *Bar) Step() {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

// Finish clears the bar.
func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}
