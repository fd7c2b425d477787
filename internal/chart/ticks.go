package chart

import (
	"math"
	"strconv"
	"strings"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// jsRound rounds half up, unlike math.Round which rounds half away from zero.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

// tickSpec finds integer bounds i1..i2 and an increment so that the ticks are
// i*inc (inc > 0) or i/-inc (inc < 0) and land on 1, 2 or 5 times a power of ten.
func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = jsRound(start * inc)
		i2 = jsRound(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = jsRound(start / inc)
		i2 = jsRound(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}

	return i1, i2, inc
}

// Ticks returns roughly count nicely rounded values covering [start, stop],
// in the same direction as the arguments.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	var i1, i2, inc float64
	if reverse {
		i1, i2, inc = tickSpec(stop, start, float64(count))
	} else {
		i1, i2, inc = tickSpec(start, stop, float64(count))
	}
	if !(i2 >= i1) {
		return nil
	}

	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			ticks[i] = k / -inc
		} else {
			ticks[i] = k * inc
		}
	}

	return ticks
}

// TickIncrement is the signed increment Ticks would use; negative values are
// the reciprocal of the step.
func TickIncrement(start, stop float64, count int) float64 {
	_, _, inc := tickSpec(start, stop, float64(count))
	return inc
}

// TickStep is the distance between adjacent ticks, negative for a reversed domain.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = TickIncrement(stop, start, count)
	} else {
		inc = TickIncrement(start, stop, count)
	}

	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		return -step
	}
	return step
}

// FixedFormat returns a formatter with just enough decimals to tell ticks
// step apart, comma thousands grouping and a typographic minus sign.
func FixedFormat(step float64) func(float64) string {
	precision := 0
	if a := math.Abs(step); a > 0 && !math.IsInf(a, 0) && !math.IsNaN(a) {
		precision = max(0, -int(math.Floor(math.Log10(a))))
	}

	return func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}

		s := strconv.FormatFloat(math.Abs(v), 'f', precision, 64)
		intPart, frac, hasFrac := strings.Cut(s, ".")
		s = groupThousands(intPart)
		if hasFrac {
			s += "." + frac
		}

		// -0 and values that round to zero print without a sign.
		if v < 0 && strings.ContainsAny(s, "123456789") {
			s = "−" + s
		}
		return s
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
