// Package viz renders training diagnostics as ASCII plots.
//
// Rendering is side-effect only and headless-safe; it never feeds back into
// training state.
package viz

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
)

// WriteLossCurve plots the loss history to w. With fewer than two points
// there is nothing to plot and the writer is left untouched.
func WriteLossCurve(w io.Writer, history []float64) {
	if len(history) < 2 {
		return
	}
	plot := asciigraph.Plot(history,
		asciigraph.Height(10),
		asciigraph.Caption("loss per diagnostic epoch"),
	)
	fmt.Fprintf(w, "%s\n", plot)
}
