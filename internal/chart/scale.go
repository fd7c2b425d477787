package chart

import (
	"math"
	"time"
)

// Tick is one labelled position along an axis, in range (pixel) units.
type Tick struct {
	Position float64
	Label    string
}

// AxisScale is what an axis needs from a scale.
type AxisScale interface {
	Range() [2]float64
	AxisTicks(count int) []Tick
}

// LinearScale maps a continuous domain onto a pixel range. Scales are values
// and are never mutated after construction.
type LinearScale struct {
	domain [2]float64
	rng    [2]float64
}

func NewLinearScale(domain, rng [2]float64) LinearScale {
	return LinearScale{domain: domain, rng: rng}
}

func (s LinearScale) Domain() [2]float64 {
	return s.domain
}

func (s LinearScale) Range() [2]float64 {
	return s.rng
}

// Scale maps v into the range. A zero-width domain maps everything to the
// middle of the range; a NaN domain maps everything to NaN.
func (s LinearScale) Scale(v float64) float64 {
	d0, d1 := s.domain[0], s.domain[1]
	span := d1 - d0

	var t float64
	switch {
	case math.IsNaN(span):
		return math.NaN()
	case span == 0:
		t = 0.5
	default:
		t = (v - d0) / span
	}

	return s.rng[0]*(1-t) + s.rng[1]*t
}

func (s LinearScale) Ticks(count int) []float64 {
	return Ticks(s.domain[0], s.domain[1], count)
}

// TickFormat returns the label formatter matching Ticks(count).
func (s LinearScale) TickFormat(count int) func(float64) string {
	return FixedFormat(TickStep(s.domain[0], s.domain[1], count))
}

func (s LinearScale) AxisTicks(count int) []Tick {
	format := s.TickFormat(count)
	values := s.Ticks(count)

	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{Position: s.Scale(v), Label: format(v)})
	}
	return ticks
}

// TimeScale is a LinearScale over epoch milliseconds with calendar-aware
// ticks in a fixed location.
type TimeScale struct {
	linear LinearScale
	loc    *time.Location
}

func NewTimeScale(domain TimeDomain, rng [2]float64, loc *time.Location) TimeScale {
	if loc == nil {
		loc = time.UTC
	}

	d := [2]float64{math.NaN(), math.NaN()}
	if domain.Valid {
		d = [2]float64{epochMillis(domain.Min), epochMillis(domain.Max)}
	}

	return TimeScale{linear: NewLinearScale(d, rng), loc: loc}
}

func (s TimeScale) Domain() TimeDomain {
	d := s.linear.Domain()
	if math.IsNaN(d[0]) || math.IsNaN(d[1]) {
		return TimeDomain{}
	}
	return TimeDomain{Min: fromMillis(d[0], s.loc), Max: fromMillis(d[1], s.loc), Valid: true}
}

func (s TimeScale) Range() [2]float64 {
	return s.linear.Range()
}

func (s TimeScale) Scale(t time.Time) float64 {
	return s.linear.Scale(epochMillis(t))
}

// ScaleDate is Scale for an accessor result; an unparsed date maps to NaN.
func (s TimeScale) ScaleDate(t time.Time, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return s.Scale(t)
}

func (s TimeScale) Ticks(count int) []time.Time {
	dom := s.Domain()
	if !dom.Valid {
		return nil
	}
	return TimeTicks(dom.Min, dom.Max, count)
}

func (s TimeScale) AxisTicks(count int) []Tick {
	values := s.Ticks(count)

	ticks := make([]Tick, 0, len(values))
	for _, t := range values {
		ticks = append(ticks, Tick{Position: s.Scale(t), Label: TimeTickFormat(t)})
	}
	return ticks
}

func epochMillis(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}

func fromMillis(ms float64, loc *time.Location) time.Time {
	return time.Unix(0, int64(ms*float64(time.Millisecond))).In(loc)
}
