// Package docx provides read access to DOCX (Office Open XML) packages: the
// ZIP archive layer, relationship resolution, story enumeration, and the
// paragraph flattener the extractors are built on.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// XML namespaces used in DOCX parts.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsW14 = "http://schemas.microsoft.com/office/word/2010/wordml"
	nsW15 = "http://schemas.microsoft.com/office/word/2012/wordml"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Part names with fixed locations in the package.
const (
	PartDocument         = "word/document.xml"
	PartStyles           = "word/styles.xml"
	PartFootnotes        = "word/footnotes.xml"
	PartEndnotes         = "word/endnotes.xml"
	PartComments         = "word/comments.xml"
	PartCommentsExtended = "word/commentsExtended.xml"
	PartCoreProps        = "docProps/core.xml"
	PartAppProps         = "docProps/app.xml"
	PartCustomProps      = "docProps/custom.xml"
)

// ErrPartMissing reports that a named part is absent from the package.
// Callers treat it as "this feature has no data" for optional parts.
var ErrPartMissing = errors.New("docx: part missing")

// Package is a zip-backed DOCX package opened for random access.
type Package struct {
	parts  map[string]*zip.File
	closer io.Closer
}

// Open opens a DOCX package from a file on disk. It fails when the file is
// not a readable ZIP archive or the main document part is absent.
func Open(filename string) (*Package, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	pkg := newPackage(zr.File, zr)
	if err := pkg.validate(); err != nil {
		zr.Close()
		return nil, err
	}
	return pkg, nil
}

// OpenBytes opens a DOCX package held entirely in memory.
func OpenBytes(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	pkg := newPackage(zr.File, nil)
	if err := pkg.validate(); err != nil {
		return nil, err
	}
	return pkg, nil
}

func newPackage(files []*zip.File, closer io.Closer) *Package {
	parts := make(map[string]*zip.File, len(files))
	for _, f := range files {
		parts[f.Name] = f
	}
	return &Package{parts: parts, closer: closer}
}

// validate checks that the mandatory main document part exists.
func (p *Package) validate() error {
	if _, ok := p.parts[PartDocument]; !ok {
		return fmt.Errorf("missing required part: %s", PartDocument)
	}
	return nil
}

// Close releases resources associated with the package. Packages opened from
// memory have nothing to release.
func (p *Package) Close() error {
	if p.closer != nil {
		err := p.closer.Close()
		p.closer = nil
		return err
	}
	return nil
}

// HasPart reports whether the named part exists in the package.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// Parts returns all part names in the package, sorted.
func (p *Package) Parts() []string {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadPart reads the full content of a named part. Absent parts yield
// ErrPartMissing so callers can distinguish "no data" from read failures.
func (p *Package) ReadPart(name string) ([]byte, error) {
	f, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("reading part %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents one Relationship entry.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// Relationship is one resolved relationship entry.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// RelationshipList parses the .rels file for a source part, in document
// order. Targets resolve relative to the directory containing the source
// part: "header1.xml" referenced from word/document.xml becomes
// "word/header1.xml", and "../customXml/item1.xml" becomes
// "customXml/item1.xml". External targets are kept verbatim. A missing .rels
// part yields an empty list.
func (p *Package) RelationshipList(sourcePart string) ([]Relationship, error) {
	relsName := relsPartFor(sourcePart)
	data, err := p.ReadPart(relsName)
	if errors.Is(err, ErrPartMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", relsName, err)
	}

	baseDir := path.Dir(sourcePart)
	resolved := make([]Relationship, 0, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		if rel.ID == "" || rel.Target == "" {
			continue
		}
		entry := Relationship{ID: rel.ID, Type: rel.Type}
		switch {
		case strings.EqualFold(rel.TargetMode, "External"):
			entry.Target = rel.Target
			entry.External = true
		case strings.HasPrefix(rel.Target, "/"):
			// Package-absolute target.
			entry.Target = strings.TrimPrefix(path.Clean(rel.Target), "/")
		default:
			entry.Target = path.Clean(path.Join(baseDir, rel.Target))
		}
		resolved = append(resolved, entry)
	}
	return resolved, nil
}

// Relationships returns the relationship map for a source part, keyed by
// relationship ID with resolved target paths as values.
func (p *Package) Relationships(sourcePart string) (map[string]string, error) {
	list, err := p.RelationshipList(sourcePart)
	if err != nil {
		return nil, err
	}
	resolved := make(map[string]string, len(list))
	for _, rel := range list {
		resolved[rel.ID] = rel.Target
	}
	return resolved, nil
}

// relsPartFor returns the .rels part name covering a source part:
// word/document.xml -> word/_rels/document.xml.rels.
func relsPartFor(sourcePart string) string {
	dir := path.Dir(sourcePart)
	base := path.Base(sourcePart)
	if dir == "." {
		return path.Join("_rels", base+".rels")
	}
	return path.Join(dir, "_rels", base+".rels")
}
