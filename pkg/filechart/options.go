// Package filechart loads tabular files into datasets and maps them to chart data.
package filechart

import (
	"github.com/creasty/defaults"

	"github.com/ukaji3/filechart-go/pkg/filechart/chart"
)

// Mode represents the load mode.
type Mode string

const (
	// ModeFull keeps every row.
	ModeFull Mode = "full"
	// ModePreview keeps the first PreviewRows rows and flags the dataset as truncated.
	ModePreview Mode = "preview"
)

// Options configures loading and mapping behavior.
type Options struct {
	// Mode specifies the load mode (full, preview).
	Mode Mode `default:"full"`
	// PreviewRows is the row cap in preview mode.
	PreviewRows int `default:"10"`
	// AllowXInY lets the x column also be used as a y column.
	AllowXInY bool
	// AdaptiveAxes enables count bars, horizontal bars and continuous line axes.
	AdaptiveAxes bool
	// CoordinateInvalid decides what happens to scatter and bubble rows that are not numeric.
	CoordinateInvalid chart.InvalidPolicy
	// ColorSeed makes colors deterministic. Zero picks random colors.
	ColorSeed int64
}

// DefaultOptions returns default options.
func DefaultOptions() (o Options) {
	if err := defaults.Set(&o); err != nil {
		panic(err)
	}
	return
}

// ShouldTruncate reports whether n rows are capped under these options.
func (o Options) ShouldTruncate(n int) bool {
	return o.Mode == ModePreview && o.PreviewRows > 0 && n > o.PreviewRows
}

// Policy returns the role selection policy.
func (o Options) Policy() chart.Policy {
	return chart.Policy{AllowXInY: o.AllowXInY}
}

// MapOptions returns the mapper options.
func (o Options) MapOptions() chart.MapOptions {
	return chart.MapOptions{
		AdaptiveAxes:      o.AdaptiveAxes,
		CoordinateInvalid: o.CoordinateInvalid,
	}
}

// Colors returns the color source selected by ColorSeed.
func (o Options) Colors() chart.ColorSource {
	if o.ColorSeed != 0 {
		return chart.SeededColors(o.ColorSeed)
	}
	return chart.RandomColors()
}
