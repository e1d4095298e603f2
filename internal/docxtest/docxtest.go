// Package docxtest builds DOCX fixtures for tests from literal XML parts, so
// no binary fixtures need to be committed.
package docxtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

type part struct {
	name    string
	content string
}

// Builder assembles a DOCX package part by part. A fresh builder already
// carries [Content_Types].xml and _rels/.rels; callers add the document and
// any auxiliary parts.
type Builder struct {
	parts []part
}

// NewBuilder returns a builder seeded with the package boilerplate parts.
func NewBuilder() *Builder {
	return &Builder{parts: []part{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
	}}
}

// Part adds (or replaces) a named part with literal content.
func (b *Builder) Part(name, content string) *Builder {
	for i := range b.parts {
		if b.parts[i].name == name {
			b.parts[i].content = content
			return b
		}
	}
	b.parts = append(b.parts, part{name, content})
	return b
}

// Document sets word/document.xml, wrapping the given body XML in the
// document scaffolding with the namespaces the extractors touch.
func (b *Builder) Document(body string) *Builder {
	return b.Part("word/document.xml", DocumentXML(body))
}

// Bytes assembles the package into an in-memory ZIP archive.
func (b *Builder) Bytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range b.parts {
		w, err := zw.Create(p.name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", p.name, err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			t.Fatalf("writing zip entry %s: %v", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// WriteFile assembles the package and writes it under t.TempDir(), returning
// the file path.
func (b *Builder) WriteFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b.Bytes(t), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// DocumentXML wraps body XML in the w:document scaffolding.
func DocumentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml">
  <w:body>` + body + `</w:body>
</w:document>`
}

// P returns a plain paragraph with a single run.
func P(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

// Paras returns the concatenation of plain paragraphs.
func Paras(texts ...string) string {
	var out string
	for _, text := range texts {
		out += P(text)
	}
	return out
}

// HeaderXML wraps paragraphs in a w:hdr root.
func HeaderXML(paragraphs string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + paragraphs + `</w:hdr>`
}

// FooterXML wraps paragraphs in a w:ftr root.
func FooterXML(paragraphs string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + paragraphs + `</w:ftr>`
}

// RelsXML wraps Relationship entries in the Relationships root.
func RelsXML(entries string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + entries + `</Relationships>`
}
