package parsetcx

import "github.com/bradenleith/parsetcx/internal/xmlq"

// Speed and Cadence live in the Garmin activity-extension block nested
// under each trackpoint, not in the main TCX schema.

// Speed is the per-trackpoint speed in meters per second.
type Speed struct {
	series
}

func newSpeed(act *xmlq.Node) (Speed, error) {
	s, err := newSeries(act, "Extensions/TPX/Speed")
	return Speed{s}, err
}

// Cadence is the per-trackpoint run cadence in steps per minute.
type Cadence struct {
	series
}

func newCadence(act *xmlq.Node) (Cadence, error) {
	s, err := newSeries(act, "Extensions/TPX/RunCadence")
	return Cadence{s}, err
}
