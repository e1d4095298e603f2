package docx

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Note is one footnote or endnote body. Word reserves non-positive ids for
// separator and continuation pseudo-notes, which are never returned here.
type Note struct {
	ID         int
	Paragraphs []*Node
}

// Text returns the note's paragraph texts joined with newlines.
func (n Note) Text() string {
	texts := make([]string, 0, len(n.Paragraphs))
	for _, p := range n.Paragraphs {
		texts = append(texts, ParagraphText(p))
	}
	return strings.Join(texts, "\n")
}

// Notes loads the notes from a footnotes/endnotes part, keeping only ids > 0
// and ordering by id. A missing part yields an empty slice; a malformed part
// is an error for the caller to degrade.
func Notes(pkg *Package, partName, tag string) ([]Note, error) {
	data, err := pkg.ReadPart(partName)
	if errors.Is(err, ErrPartMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", partName, err)
	}

	var notes []Note
	for _, elem := range root.FindAll(tag) {
		id, err := strconv.Atoi(elem.Attr("id"))
		if err != nil || id <= 0 {
			continue
		}
		notes = append(notes, Note{ID: id, Paragraphs: elem.FindAll("p")})
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

// NoteTexts returns a map from note id to newline-joined note body text.
func NoteTexts(pkg *Package, partName, tag string) (map[int]string, error) {
	notes, err := Notes(pkg, partName, tag)
	if err != nil {
		return nil, err
	}
	texts := make(map[int]string, len(notes))
	for _, note := range notes {
		texts[note.ID] = note.Text()
	}
	return texts, nil
}

// loadNotesForKind maps a story kind to its notes part.
func loadNotesForKind(pkg *Package, kind string) ([]Note, error) {
	switch kind {
	case StoryFootnote:
		return Notes(pkg, PartFootnotes, "footnote")
	case StoryEndnote:
		return Notes(pkg, PartEndnotes, "endnote")
	}
	return nil, nil
}
