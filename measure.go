package parsetcx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bradenleith/parsetcx/internal/xmlq"
)

// trackpointPath addresses every trackpoint of the activity. Laps are not
// reset: all trackpoints across all laps form one flat sequence in
// document order.
const trackpointPath = "Lap/Track/Trackpoint"

// Channel is the contract shared by every metric sequence. A metric the
// file never records reports Present() == false; its statistics return
// no result instead of zeros.
type Channel interface {
	Len() int
	Present() bool
	fmt.Stringer
}

// errNoValue marks a node that exists but carries no usable value, which
// extract treats the same as an absent field.
var errNoValue = errors.New("no value")

// extract builds one sample per trackpoint across all laps. Presence is
// decided once for the whole document: if fieldPath matches nothing
// anywhere, the channel is absent and the result is nil. A trackpoint
// missing the field repeats the previous sample; if the first trackpoint
// is the one missing it, there is nothing to repeat and extraction fails
// with ErrMissingFirstSample.
func extract[T any](act *xmlq.Node, fieldPath string, conv func(*xmlq.Node) (T, error)) ([]T, error) {
	if len(xmlq.Find(act, trackpointPath+"/"+fieldPath)) == 0 {
		return nil, nil
	}
	var data []T
	for _, lap := range xmlq.Find(act, "Lap") {
		for _, tp := range xmlq.Find(lap, "Track/Trackpoint") {
			var (
				v   T
				err error
			)
			node := xmlq.First(tp, fieldPath)
			if node != nil {
				v, err = conv(node)
			}
			switch {
			case node == nil || errors.Is(err, errNoValue):
				if len(data) == 0 {
					return nil, fmt.Errorf("%w: %s", ErrMissingFirstSample, fieldPath)
				}
				data = append(data, data[len(data)-1])
			case err != nil:
				return nil, fmt.Errorf("trackpoint %s: %w", fieldPath, err)
			default:
				data = append(data, v)
			}
		}
	}
	return data, nil
}

// floatText parses the node's character data as one floating point sample.
func floatText(n *xmlq.Node) (float64, error) {
	return strconv.ParseFloat(xmlq.Text(n), 64)
}

// series backs every scalar channel. A nil data slice means the metric is
// absent from the whole document, which is distinct from an empty one.
type series struct {
	data []float64
}

func newSeries(act *xmlq.Node, fieldPath string) (series, error) {
	data, err := extract(act, fieldPath, floatText)
	if err != nil {
		return series{}, err
	}
	return series{data: data}, nil
}

func (s series) Present() bool { return s.data != nil }

func (s series) Len() int { return len(s.data) }

// At returns the i-th sample. It panics if i is out of range, like a slice.
func (s series) At(i int) float64 { return s.data[i] }

// Values returns a copy of the samples in trackpoint order, or nil when
// the channel is absent.
func (s series) Values() []float64 {
	if s.data == nil {
		return nil
	}
	out := make([]float64, len(s.data))
	copy(out, s.data)
	return out
}

func (s series) String() string { return fmt.Sprint(s.data) }

// Min returns the smallest sample. The second result is false when the
// channel is absent.
func (s series) Min() (float64, bool) {
	if s.data == nil {
		return 0, false
	}
	min := s.data[0]
	for _, v := range s.data[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

// Max returns the largest sample. The second result is false when the
// channel is absent.
func (s series) Max() (float64, bool) {
	if s.data == nil {
		return 0, false
	}
	max := s.data[0]
	for _, v := range s.data[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// Average returns the arithmetic mean of the samples. The second result is
// false when the channel is absent.
func (s series) Average() (float64, bool) {
	if s.data == nil {
		return 0, false
	}
	var sum float64
	for _, v := range s.data {
		sum += v
	}
	return sum / float64(len(s.data)), true
}

var (
	_ Channel = Time{}
	_ Channel = AbsoluteTime{}
	_ Channel = HeartRate{}
	_ Channel = Distance{}
	_ Channel = Speed{}
	_ Channel = Cadence{}
	_ Channel = Location{}
	_ Channel = Altitude{}
	_ Channel = Pace{}
)
