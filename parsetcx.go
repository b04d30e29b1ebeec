// Package parsetcx extracts workout telemetry from Garmin Training Center
// Database (.tcx) files. Every metric recorded per trackpoint — time,
// heart rate, distance, speed, cadence, position, altitude, plus the
// derived pace — is exposed as a channel: one flat sequence of samples
// across all laps of the first activity, with summary statistics that
// report "no data" explicitly when the file never carries the metric.
package parsetcx

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bradenleith/parsetcx/internal/xmlq"
)

var (
	// ErrUnsupportedFile means the path has no recognized extension or
	// its content belongs to another activity format.
	ErrUnsupportedFile = errors.New("unsupported activity file")

	// ErrNotTCX means the document root is not TrainingCenterDatabase.
	ErrNotTCX = errors.New("not a TrainingCenterDatabase document")

	// ErrNoActivity means the document contains no activity element.
	ErrNoActivity = errors.New("no activity found")

	// ErrMissingFirstSample means a trackpoint field was missing on the
	// very first trackpoint, leaving no prior value to carry forward.
	ErrMissingFirstSample = errors.New("field missing on first trackpoint")
)

// Device identifies the recording unit, read once from the activity's
// Creator block.
type Device struct {
	Name    string
	Version string // "v{major}.{minor}"
}

// Activity holds every channel of the first activity in a file. Channels
// are immutable after Parse returns; a metric absent from the whole file
// reports Present() == false rather than a zero-length sequence.
type Activity struct {
	Time      Time
	HeartRate HeartRate
	Distance  Distance
	Speed     Speed
	Cadence   Cadence
	Location  Location
	Altitude  Altitude
	Pace      Pace
	Device    Device
}

// Parse reads the TCX file at path and extracts all channels of its first
// activity. Each call is independent; nothing is cached between calls.
func Parse(path string) (*Activity, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tcx", ".xml":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, path)
	}
	ft, err := sniffFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if ft == fileTypeFIT || ft == fileTypeGPX {
		return nil, fmt.Errorf("%w: %s contains %s data", ErrUnsupportedFile, path, ft)
	}
	root, err := xmlq.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if root.Tag != "TrainingCenterDatabase" {
		return nil, fmt.Errorf("%w: root element is %s", ErrNotTCX, root.Tag)
	}
	act := xmlq.First(root, "Activities/Activity")
	if act == nil {
		return nil, ErrNoActivity
	}
	return parseActivity(act)
}

// parseActivity builds the channels in dependency order so Pace can be
// derived from the already-built Time and Distance.
func parseActivity(act *xmlq.Node) (*Activity, error) {
	var (
		a   Activity
		err error
	)
	if a.Time, err = newTime(act); err != nil {
		return nil, err
	}
	if a.HeartRate, err = newHeartRate(act); err != nil {
		return nil, err
	}
	if a.Distance, err = newDistance(act); err != nil {
		return nil, err
	}
	if a.Speed, err = newSpeed(act); err != nil {
		return nil, err
	}
	if a.Cadence, err = newCadence(act); err != nil {
		return nil, err
	}
	if a.Location, err = newLocation(act); err != nil {
		return nil, err
	}
	if a.Altitude, err = newAltitude(act); err != nil {
		return nil, err
	}
	a.Pace = newPace(a.Time, a.Distance)
	a.Device = parseDevice(act)
	return &a, nil
}

// parseDevice reads the creator name and version. A missing Creator block
// leaves the zero Device; device metadata never fails a parse.
func parseDevice(act *xmlq.Node) Device {
	var d Device
	if n := xmlq.First(act, "Creator/Name"); n != nil {
		d.Name = xmlq.Text(n)
	}
	ver := xmlq.First(act, "Creator/Version")
	if ver == nil {
		return d
	}
	major := xmlq.First(ver, "VersionMajor")
	minor := xmlq.First(ver, "VersionMinor")
	if major != nil && minor != nil {
		d.Version = fmt.Sprintf("v%s.%s", xmlq.Text(major), xmlq.Text(minor))
	}
	return d
}
