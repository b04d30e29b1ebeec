package parsetcx

import (
	"bytes"
	"os"
)

type fileType string

const (
	fileTypeFIT     fileType = "fit"
	fileTypeTCX     fileType = "tcx"
	fileTypeGPX     fileType = "gpx"
	fileTypeUnknown fileType = "unknown"
)

// sniffFile identifies the activity format from the first 512 bytes, so a
// GPX or FIT payload hiding behind a .tcx/.xml name fails with a precise
// error instead of a confusing XML one.
func sniffFile(path string) (fileType, error) {
	file, err := os.Open(path)
	if err != nil {
		return fileTypeUnknown, err
	}
	defer file.Close()

	header := make([]byte, 512)
	n, err := file.Read(header)
	if err != nil && n == 0 {
		return fileTypeUnknown, err
	}
	return detectFileType(header[:n]), nil
}

func detectFileType(data []byte) fileType {
	// FIT files carry ".FIT" at byte offset 8 of the header.
	if len(data) >= 12 && bytes.Equal(data[8:12], []byte(".FIT")) {
		return fileTypeFIT
	}

	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("<")) {
		if bytes.Contains(data, []byte("<gpx")) ||
			bytes.Contains(data, []byte("topografix.com/GPX")) {
			return fileTypeGPX
		}
		if bytes.Contains(data, []byte("TrainingCenterDatabase")) {
			return fileTypeTCX
		}
	}

	return fileTypeUnknown
}
