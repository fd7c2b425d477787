package chart

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type timeUnit int

const (
	unitMillisecond timeUnit = iota
	unitSecond
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

const (
	durationSecond = float64(time.Second / time.Millisecond)
	durationMinute = durationSecond * 60
	durationHour   = durationMinute * 60
	durationDay    = durationHour * 24
	durationWeek   = durationDay * 7
	durationMonth  = durationDay * 30
	durationYear   = durationDay * 365

	// maxTimeTicks bounds interval enumeration for pathological domains.
	maxTimeTicks = 10000
)

type tickInterval struct {
	unit     timeUnit
	step     int
	duration float64
}

var tickIntervals = []tickInterval{
	{unitSecond, 1, durationSecond},
	{unitSecond, 5, 5 * durationSecond},
	{unitSecond, 15, 15 * durationSecond},
	{unitSecond, 30, 30 * durationSecond},
	{unitMinute, 1, durationMinute},
	{unitMinute, 5, 5 * durationMinute},
	{unitMinute, 15, 15 * durationMinute},
	{unitMinute, 30, 30 * durationMinute},
	{unitHour, 1, durationHour},
	{unitHour, 3, 3 * durationHour},
	{unitHour, 6, 6 * durationHour},
	{unitHour, 12, 12 * durationHour},
	{unitDay, 1, durationDay},
	{unitDay, 2, 2 * durationDay},
	{unitWeek, 1, durationWeek},
	{unitMonth, 1, durationMonth},
	{unitMonth, 3, 3 * durationMonth},
	{unitYear, 1, durationYear},
}

func (u timeUnit) floor(t time.Time) time.Time {
	y, mo, d := t.Date()
	loc := t.Location()

	switch u {
	case unitMillisecond:
		return t.Truncate(time.Millisecond)
	case unitSecond:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case unitMinute:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, loc)
	case unitHour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, loc)
	case unitDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case unitWeek:
		return time.Date(y, mo, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case unitMonth:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
}

func (u timeUnit) ceil(t time.Time) time.Time {
	f := u.floor(t.Add(-time.Nanosecond))
	return u.floor(u.offset(f, 1))
}

func (u timeUnit) offset(t time.Time, n int) time.Time {
	switch u {
	case unitMillisecond:
		return t.Add(time.Duration(n) * time.Millisecond)
	case unitSecond:
		return t.Add(time.Duration(n) * time.Second)
	case unitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case unitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case unitDay:
		return t.AddDate(0, 0, n)
	case unitWeek:
		return t.AddDate(0, 0, 7*n)
	case unitMonth:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

// field is the calendar component that every(step) filters on.
func (u timeUnit) field(t time.Time) int {
	switch u {
	case unitMillisecond:
		return int(t.UnixMilli())
	case unitSecond:
		return t.Second()
	case unitMinute:
		return t.Minute()
	case unitHour:
		return t.Hour()
	case unitDay:
		return t.Day() - 1
	case unitWeek:
		return 0
	case unitMonth:
		return int(t.Month()) - 1
	default:
		return t.Year()
	}
}

// rangeEvery lists the unit boundaries in [start, stop) whose field is a
// multiple of step.
func (u timeUnit) rangeEvery(start, stop time.Time, step int) []time.Time {
	if step < 1 {
		step = 1
	}

	var out []time.Time
	if u == unitMillisecond {
		ms := start.UnixMilli()
		if start.After(time.UnixMilli(ms).In(start.Location())) {
			ms++
		}
		if r := ms % int64(step); r != 0 {
			ms += int64(step) - r
		}
		for t := time.UnixMilli(ms).In(start.Location()); t.Before(stop) && len(out) < maxTimeTicks; t = t.Add(time.Duration(step) * time.Millisecond) {
			out = append(out, t)
		}
		return out
	}

	for t, n := u.ceil(start), 0; t.Before(stop) && n < maxTimeTicks*step; t, n = u.offset(t, 1), n+1 {
		if mod(u.field(t), step) == 0 {
			out = append(out, t)
		}
	}
	return out
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// TimeTicks returns calendar-aligned ticks covering [start, stop], about
// count of them, in start's location.
func TimeTicks(start, stop time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}

	reverse := stop.Before(start)
	if reverse {
		start, stop = stop, start
	}

	unit, step := chooseInterval(start, stop, count)
	ticks := unit.rangeEvery(start, stop.Add(time.Millisecond), step)

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

func chooseInterval(start, stop time.Time, count int) (timeUnit, int) {
	a, b := epochMillis(start), epochMillis(stop)
	target := math.Abs(b-a) / float64(count)

	i := sort.Search(len(tickIntervals), func(i int) bool {
		return tickIntervals[i].duration > target
	})

	switch {
	case i == len(tickIntervals):
		step := TickStep(a/durationYear, b/durationYear, count)
		return unitYear, max(1, int(math.Round(step)))
	case i == 0:
		step := math.Max(TickStep(a, b, count), 1)
		return unitMillisecond, int(math.Round(step))
	}

	chosen := tickIntervals[i]
	if target/tickIntervals[i-1].duration < tickIntervals[i].duration/target {
		chosen = tickIntervals[i-1]
	}
	return chosen.unit, chosen.step
}

// TimeTickFormat labels a tick with the coarsest calendar field that changes
// at it: milliseconds, seconds, minutes, hours, weekdays, weeks, months or years.
func TimeTickFormat(t time.Time) string {
	switch {
	case unitSecond.floor(t).Before(t):
		return fmt.Sprintf(".%03d", t.Nanosecond()/int(time.Millisecond))
	case unitMinute.floor(t).Before(t):
		return t.Format(":05")
	case unitHour.floor(t).Before(t):
		return t.Format("03:04")
	case unitDay.floor(t).Before(t):
		return t.Format("03 PM")
	case unitMonth.floor(t).Before(t):
		if unitWeek.floor(t).Before(t) {
			return t.Format("Mon 02")
		}
		return t.Format("Jan 02")
	case unitYear.floor(t).Before(t):
		return t.Format("January")
	default:
		return t.Format("2006")
	}
}
