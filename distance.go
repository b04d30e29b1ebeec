package parsetcx

import "github.com/bradenleith/parsetcx/internal/xmlq"

// Distance is the cumulative distance in meters at each trackpoint.
type Distance struct {
	series
}

func newDistance(act *xmlq.Node) (Distance, error) {
	s, err := newSeries(act, "DistanceMeters")
	return Distance{s}, err
}

// Total is the cumulative distance at the last trackpoint, the net
// distance covered by the activity.
func (d Distance) Total() (float64, bool) {
	if d.data == nil {
		return 0, false
	}
	return d.data[len(d.data)-1], true
}

// Raw de-cumulates the series into per-sample increments:
// raw[i] = data[i] - data[i-1], with raw[0] = data[0]. Returns nil when
// the channel is absent.
func (d Distance) Raw() []float64 {
	if d.data == nil {
		return nil
	}
	raw := make([]float64, len(d.data))
	raw[0] = d.data[0]
	for i := 1; i < len(d.data); i++ {
		raw[i] = d.data[i] - d.data[i-1]
	}
	return raw
}
