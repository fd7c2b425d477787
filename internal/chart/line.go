package chart

import (
	"math"
	"strings"

	"weather-chart/internal/surface"
)

// pathDigits is the number of decimals kept in path data.
const pathDigits = 3

type Point struct {
	X float64
	Y float64
}

// PathSpec is the ordered list of pixel points a line passes through.
type PathSpec []Point

// LineGenerator maps each datum to a pixel point through its X and Y
// accessors. Points keep input order; NaN coordinates are kept as is.
type LineGenerator[T any] struct {
	X func(T) float64
	Y func(T) float64
}

func (g LineGenerator[T]) Points(data []T) PathSpec {
	points := make(PathSpec, 0, len(data))
	for _, d := range data {
		points = append(points, Point{X: g.X(d), Y: g.Y(d)})
	}
	return points
}

// D renders the points as an open polyline in SVG path syntax. An empty PathSpec
// has no path data.
func (p PathSpec) D() string {
	if len(p) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, pt := range p {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		sb.WriteString(surface.FormatNumber(roundTo(pt.X, pathDigits)))
		sb.WriteByte(',')
		sb.WriteString(surface.FormatNumber(roundTo(pt.Y, pathDigits)))
	}
	return sb.String()
}

func roundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	k := math.Pow(10, float64(digits))
	return jsRound(v*k) / k
}
