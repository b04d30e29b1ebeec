package parsetcx

import (
	"fmt"
	"strconv"

	"github.com/bradenleith/parsetcx/internal/xmlq"
)

// Point is one GPS fix in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Location is the per-trackpoint GPS position channel. Both coordinates
// must be present together under the same Position element; a position
// missing either one counts as no position at all, and the whole previous
// pair is carried forward.
type Location struct {
	data []Point
}

func newLocation(act *xmlq.Node) (Location, error) {
	data, err := extract(act, "Position", pointNode)
	if err != nil {
		return Location{}, err
	}
	return Location{data: data}, nil
}

func pointNode(n *xmlq.Node) (Point, error) {
	lat := xmlq.First(n, "LatitudeDegrees")
	lon := xmlq.First(n, "LongitudeDegrees")
	if lat == nil || lon == nil {
		return Point{}, errNoValue
	}
	latV, err := strconv.ParseFloat(xmlq.Text(lat), 64)
	if err != nil {
		return Point{}, err
	}
	lonV, err := strconv.ParseFloat(xmlq.Text(lon), 64)
	if err != nil {
		return Point{}, err
	}
	return Point{Lat: latV, Lon: lonV}, nil
}

func (l Location) Present() bool { return l.data != nil }

func (l Location) Len() int { return len(l.data) }

// At returns the position at the i-th trackpoint.
func (l Location) At(i int) Point { return l.data[i] }

// Values returns a copy of the positions in trackpoint order.
func (l Location) Values() []Point {
	if l.data == nil {
		return nil
	}
	out := make([]Point, len(l.data))
	copy(out, l.data)
	return out
}

func (l Location) String() string { return fmt.Sprint(l.data) }

// Start is the first recorded position.
func (l Location) Start() (Point, bool) {
	if l.data == nil {
		return Point{}, false
	}
	return l.data[0], true
}

// Finish is the last recorded position.
func (l Location) Finish() (Point, bool) {
	if l.data == nil {
		return Point{}, false
	}
	return l.data[len(l.data)-1], true
}

// Latitude projects the latitude of every position. Returns nil when the
// channel is absent.
func (l Location) Latitude() []float64 {
	if l.data == nil {
		return nil
	}
	out := make([]float64, len(l.data))
	for i, p := range l.data {
		out[i] = p.Lat
	}
	return out
}

// Longitude projects the longitude of every position. Returns nil when
// the channel is absent.
func (l Location) Longitude() []float64 {
	if l.data == nil {
		return nil
	}
	out := make([]float64, len(l.data))
	for i, p := range l.data {
		out[i] = p.Lon
	}
	return out
}
