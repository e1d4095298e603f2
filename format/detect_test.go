package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, "DOCX"},
		{Zip, "ZIP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

// zipWith assembles an in-memory archive from entry names.
func zipWith(t *testing.T, names ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte("<x/>")); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "docx package",
			data: zipWith(t, "[Content_Types].xml", "word/document.xml"),
			want: DOCX,
		},
		{
			name: "zip without main document",
			data: zipWith(t, "mimetype", "content.xml"),
			want: Zip,
		},
		{
			name: "zip magic but truncated archive",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00},
			want: Unknown,
		},
		{
			name: "plain text",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
		{
			name: "pdf",
			data: []byte("%PDF-1.4\n%%EOF"),
			want: Unknown,
		},
		{
			name: "empty",
			data: nil,
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"contract.docx", DOCX},
		{"contract.DOCX", DOCX},
		{"/path/to/contract.Docx", DOCX},
		{"archive.zip", Zip},
		{"notes.txt", Unknown},
		{"document", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := FromExtension(tt.filename); got != tt.want {
			t.Errorf("FromExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
