package chart

import (
	"errors"
	"math"
)

var ErrInvalidViewport = errors.New("viewport width must be positive")

type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GeometrySettings holds the fixed part of the layout; only the viewport
// width varies between page loads.
type GeometrySettings struct {
	WidthFraction float64
	Height        float64
	Margins       Margins
}

// Geometry is the outer canvas size plus margins. The inner plotting area is
// derived from it.
type Geometry struct {
	Width   float64
	Height  float64
	Margins Margins
}

// NewGeometry sizes the canvas from the viewport width read once at load.
// The outer size is widened when needed so the inner area is never negative.
func NewGeometry(viewportWidth float64, s GeometrySettings) Geometry {
	g := Geometry{
		Width:   viewportWidth * s.WidthFraction,
		Height:  s.Height,
		Margins: s.Margins,
	}

	g.Width = math.Max(g.Width, g.Margins.Left+g.Margins.Right)
	g.Height = math.Max(g.Height, g.Margins.Top+g.Margins.Bottom)

	return g
}

func (g Geometry) InnerWidth() float64 {
	return math.Max(0, g.Width-g.Margins.Left-g.Margins.Right)
}

func (g Geometry) InnerHeight() float64 {
	return math.Max(0, g.Height-g.Margins.Top-g.Margins.Bottom)
}

// Validate reports a viewport that cannot hold a chart.
func Validate(viewportWidth float64) error {
	if math.IsNaN(viewportWidth) || math.IsInf(viewportWidth, 0) || viewportWidth <= 0 {
		return ErrInvalidViewport
	}
	return nil
}
