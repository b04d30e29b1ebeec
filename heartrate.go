package parsetcx

import "github.com/bradenleith/parsetcx/internal/xmlq"

// HeartRate is the per-trackpoint heart rate in beats per minute, read
// from the HeartRateBpm value element.
type HeartRate struct {
	series
}

func newHeartRate(act *xmlq.Node) (HeartRate, error) {
	s, err := newSeries(act, "HeartRateBpm/Value")
	return HeartRate{s}, err
}
