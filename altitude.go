package parsetcx

import "github.com/bradenleith/parsetcx/internal/xmlq"

// Altitude is the per-trackpoint altitude in meters.
type Altitude struct {
	series
}

func newAltitude(act *xmlq.Node) (Altitude, error) {
	s, err := newSeries(act, "AltitudeMeters")
	return Altitude{s}, err
}

// Change returns the per-sample altitude delta, value minus the previous
// value, for elevation gain/loss analysis. The first element is zero.
// Returns nil when the channel is absent.
func (a Altitude) Change() []float64 {
	if a.data == nil {
		return nil
	}
	delta := make([]float64, len(a.data))
	for i := 1; i < len(a.data); i++ {
		delta[i] = a.data[i] - a.data[i-1]
	}
	return delta
}
