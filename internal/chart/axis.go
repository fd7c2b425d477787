package chart

import (
	"weather-chart/internal/surface"
)

type Orientation int

const (
	OrientTop Orientation = iota + 1
	OrientRight
	OrientBottom
	OrientLeft
)

const (
	defaultTickSize    = 6
	defaultTickPadding = 3
	defaultTickCount   = 10

	// crispOffset aligns one-pixel strokes with the pixel grid.
	crispOffset = 0.5
)

// Axis draws a domain line with labelled ticks for a scale into a group.
type Axis struct {
	orient        Orientation
	scale         AxisScale
	tickCount     int
	tickSizeInner float64
	tickSizeOuter float64
	tickPadding   float64
	offset        float64
}

func newAxis(orient Orientation, scale AxisScale) *Axis {
	return &Axis{
		orient:        orient,
		scale:         scale,
		tickCount:     defaultTickCount,
		tickSizeInner: defaultTickSize,
		tickSizeOuter: defaultTickSize,
		tickPadding:   defaultTickPadding,
		offset:        crispOffset,
	}
}

func AxisTop(scale AxisScale) *Axis    { return newAxis(OrientTop, scale) }
func AxisRight(scale AxisScale) *Axis  { return newAxis(OrientRight, scale) }
func AxisBottom(scale AxisScale) *Axis { return newAxis(OrientBottom, scale) }
func AxisLeft(scale AxisScale) *Axis   { return newAxis(OrientLeft, scale) }

func (a *Axis) Ticks(count int) *Axis {
	a.tickCount = count
	return a
}

func (a *Axis) TickSize(size float64) *Axis {
	a.tickSizeInner = size
	a.tickSizeOuter = size
	return a
}

func (a *Axis) TickPadding(padding float64) *Axis {
	a.tickPadding = padding
	return a
}

func (a *Axis) vertical() bool {
	return a.orient == OrientLeft || a.orient == OrientRight
}

func (a *Axis) direction() float64 {
	if a.orient == OrientTop || a.orient == OrientLeft {
		return -1
	}
	return 1
}

// Render appends the axis to g: one domain path followed by one group per tick.
func (a *Axis) Render(g *surface.Node) {
	k := a.direction()
	spacing := max(a.tickSizeInner, 0) + a.tickPadding
	rng := a.scale.Range()
	range0, range1 := rng[0]+a.offset, rng[1]+a.offset

	anchor := "middle"
	switch a.orient {
	case OrientRight:
		anchor = "start"
	case OrientLeft:
		anchor = "end"
	}
	g.Attr("fill", "none").
		Attr("font-size", 10).
		Attr("font-family", "sans-serif").
		Attr("text-anchor", anchor)

	num := surface.FormatNumber
	outer := num(k * a.tickSizeOuter)
	var d string
	switch {
	case a.vertical() && a.tickSizeOuter != 0:
		d = "M" + outer + "," + num(range0) + "H" + num(a.offset) + "V" + num(range1) + "H" + outer
	case a.vertical():
		d = "M" + num(a.offset) + "," + num(range0) + "V" + num(range1)
	case a.tickSizeOuter != 0:
		d = "M" + num(range0) + "," + outer + "V" + num(a.offset) + "H" + num(range1) + "V" + outer
	default:
		d = "M" + num(range0) + "," + num(a.offset) + "H" + num(range1)
	}
	g.Append("path").
		Attr("class", "domain").
		Attr("stroke", "currentColor").
		Attr("d", d)

	lineAttr, textAttr, dy := "y2", "y", "0.71em"
	switch a.orient {
	case OrientTop:
		dy = "0em"
	case OrientLeft, OrientRight:
		lineAttr, textAttr, dy = "x2", "x", "0.32em"
	}

	for _, tick := range a.scale.AxisTicks(a.tickCount) {
		pos := tick.Position + a.offset
		transform := "translate(" + num(pos) + ",0)"
		if a.vertical() {
			transform = "translate(0," + num(pos) + ")"
		}

		t := g.Append("g").
			Attr("class", "tick").
			Attr("opacity", 1).
			Attr("transform", transform)
		t.Append("line").
			Attr("stroke", "currentColor").
			Attr(lineAttr, k*a.tickSizeInner)
		t.Append("text").
			Attr("fill", "currentColor").
			Attr(textAttr, k*spacing).
			Attr("dy", dy).
			SetText(tick.Label)
	}
}
