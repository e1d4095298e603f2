// Package format provides content sniffing for lawdocx inputs.
package format

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Zip indicates a ZIP archive that is not a DOCX package.
	Zip
	// DOCX indicates a Microsoft Word (.docx) package.
	DOCX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Zip:
		return "ZIP"
	case DOCX:
		return "DOCX"
	default:
		return "Unknown"
	}
}

// zipMagic is the local-file-header signature every ZIP archive starts with.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// Detect determines the format of a byte payload from its content. DOCX
// requires the ZIP magic plus a readable central directory containing
// word/document.xml; an archive without that part is plain Zip.
func Detect(data []byte) Format {
	if !bytes.HasPrefix(data, zipMagic) {
		return Unknown
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return DOCX
		}
	}
	return Zip
}

// DetectFile determines the format of a file on disk.
func DetectFile(filename string) (Format, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Unknown, err
	}
	return Detect(data), nil
}

// FromExtension guesses a format from the filename extension alone. It is a
// hint for error messages; Detect decides what actually gets extracted.
func FromExtension(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".zip":
		return Zip
	default:
		return Unknown
	}
}
