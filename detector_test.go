package parsetcx

import (
	"errors"
	"testing"
)

func TestDetectFileType(t *testing.T) {
	fitHeader := append(make([]byte, 8), []byte(".FIT\x00\x00")...)

	cases := []struct {
		name string
		data []byte
		want fileType
	}{
		{"fit header", fitHeader, fileTypeFIT},
		{"gpx document", []byte(`<?xml version="1.0"?><gpx version="1.1"><trk/></gpx>`), fileTypeGPX},
		{"gpx namespace", []byte(`<?xml version="1.0"?><g xmlns="http://www.topografix.com/GPX/1/1"/>`), fileTypeGPX},
		{"tcx document", []byte(tcxOpen), fileTypeTCX},
		{"leading whitespace", []byte("\n  " + tcxOpen), fileTypeTCX},
		{"garbage", []byte("not an activity file"), fileTypeUnknown},
		{"empty", nil, fileTypeUnknown},
	}
	for _, tc := range cases {
		if got := detectFileType(tc.data); got != tc.want {
			t.Errorf("%s: detected %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestParseRejectsMisnamedGPX(t *testing.T) {
	path := writeFile(t, "run.xml", `<?xml version="1.0"?>
<gpx version="1.1" creator="test"><trk><trkseg/></trk></gpx>`)
	_, err := Parse(path)
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("err = %v, want ErrUnsupportedFile", err)
	}
}

func TestParseRejectsMisnamedFIT(t *testing.T) {
	header := append(make([]byte, 8), []byte(".FIT\x00\x00")...)
	path := writeFile(t, "run.tcx", string(header))
	_, err := Parse(path)
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("err = %v, want ErrUnsupportedFile", err)
	}
}
