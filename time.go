package parsetcx

import (
	"fmt"
	"time"

	"github.com/bradenleith/parsetcx/internal/xmlq"
)

// Time is the elapsed-time channel: each sample is the duration since the
// first trackpoint. The wall-clock series it was derived from remains
// available as Absolute. Carry-forward happens on the raw timestamps, so a
// trackpoint without a Time element repeats the previous moment, not the
// previous duration.
type Time struct {
	data     []time.Duration
	Absolute AbsoluteTime
}

func newTime(act *xmlq.Node) (Time, error) {
	raw, err := extract(act, "Time", timestampText)
	if err != nil {
		return Time{}, err
	}
	if raw == nil {
		return Time{}, nil
	}
	elapsed := make([]time.Duration, len(raw))
	for i, ts := range raw {
		elapsed[i] = ts.Sub(raw[0])
	}
	return Time{data: elapsed, Absolute: AbsoluteTime{data: raw}}, nil
}

// timestampText parses a trackpoint timestamp. Fractional seconds are
// optional: devices emit both 2017-06-10T12:00:00Z and
// 2017-06-10T12:00:00.000000Z.
func timestampText(n *xmlq.Node) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, xmlq.Text(n))
}

func (t Time) Present() bool { return t.data != nil }

func (t Time) Len() int { return len(t.data) }

// At returns the elapsed time at the i-th trackpoint.
func (t Time) At(i int) time.Duration { return t.data[i] }

// Values returns a copy of the elapsed-time samples.
func (t Time) Values() []time.Duration {
	if t.data == nil {
		return nil
	}
	out := make([]time.Duration, len(t.data))
	copy(out, t.data)
	return out
}

func (t Time) String() string { return fmt.Sprint(t.data) }

// Duration is the elapsed time of the last sample.
func (t Time) Duration() (time.Duration, bool) {
	if t.data == nil {
		return 0, false
	}
	return t.data[len(t.data)-1], true
}

// Start is the absolute timestamp of the first sample.
func (t Time) Start() (time.Time, bool) { return t.Absolute.Start() }

// Finish is the absolute timestamp of the last sample.
func (t Time) Finish() (time.Time, bool) { return t.Absolute.Finish() }

// AbsoluteTime holds the wall-clock timestamps the elapsed series was
// computed from.
type AbsoluteTime struct {
	data []time.Time
}

func (a AbsoluteTime) Present() bool { return a.data != nil }

func (a AbsoluteTime) Len() int { return len(a.data) }

// At returns the timestamp of the i-th trackpoint.
func (a AbsoluteTime) At(i int) time.Time { return a.data[i] }

// Values returns a copy of the timestamps.
func (a AbsoluteTime) Values() []time.Time {
	if a.data == nil {
		return nil
	}
	out := make([]time.Time, len(a.data))
	copy(out, a.data)
	return out
}

func (a AbsoluteTime) String() string { return fmt.Sprint(a.data) }

// Start is the first timestamp.
func (a AbsoluteTime) Start() (time.Time, bool) {
	if a.data == nil {
		return time.Time{}, false
	}
	return a.data[0], true
}

// Finish is the last timestamp.
func (a AbsoluteTime) Finish() (time.Time, bool) {
	if a.data == nil {
		return time.Time{}, false
	}
	return a.data[len(a.data)-1], true
}
