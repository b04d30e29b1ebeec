package parsetcx

import "math"

// Pace is minutes per kilometer derived from the Time and Distance
// channels at the same trackpoint index: elapsed minutes so far divided
// by cumulative kilometers so far, not an instantaneous rate. It exists
// only when both source channels carry data.
//
// Zero cumulative distance produces a non-finite sample under IEEE
// arithmetic: NaN at index 0 (elapsed is also zero there) or +Inf at a
// later index. Statistics skip non-finite samples; Values and Seconds
// keep them so indexes stay aligned with Time and Distance.
type Pace struct {
	series
}

func newPace(t Time, d Distance) Pace {
	if !t.Present() || !d.Present() {
		return Pace{}
	}
	n := t.Len()
	if d.Len() < n {
		n = d.Len()
	}
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = t.At(i).Minutes() / (d.At(i) / 1000)
	}
	return Pace{series{data: data}}
}

// finite projects the samples that are real paces, dropping the NaN and
// ±Inf values produced by zero cumulative distance. Absent when no finite
// sample exists.
func (p Pace) finite() series {
	var vals []float64
	for _, v := range p.data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	return series{data: vals}
}

// Min returns the smallest finite pace value.
func (p Pace) Min() (float64, bool) { return p.finite().Min() }

// Max returns the largest finite pace value.
func (p Pace) Max() (float64, bool) { return p.finite().Max() }

// Average returns the arithmetic mean of the finite pace values.
func (p Pace) Average() (float64, bool) { return p.finite().Average() }

// Seconds returns the pace series converted to seconds per kilometer.
// Returns nil when the channel is absent.
func (p Pace) Seconds() []float64 {
	if p.data == nil {
		return nil
	}
	out := make([]float64, len(p.data))
	for i, v := range p.data {
		out[i] = v * 60
	}
	return out
}

// Slowest is the largest finite pace value, the most minutes spent per
// kilometer.
func (p Pace) Slowest() (float64, bool) { return p.Max() }

// Fastest is the smallest positive finite pace value.
func (p Pace) Fastest() (float64, bool) {
	var best float64
	found := false
	for _, v := range p.finite().data {
		if v > 0 && (!found || v < best) {
			best = v
			found = true
		}
	}
	return best, found
}

// Final is the pace at the last trackpoint, the whole-activity pace.
func (p Pace) Final() (float64, bool) {
	if p.data == nil {
		return 0, false
	}
	return p.data[len(p.data)-1], true
}
