package docx

import (
	"fmt"
	"sort"
	"strings"
)

// Story kinds.
const (
	StoryBody     = "body"
	StoryHeader   = "header"
	StoryFooter   = "footer"
	StoryFootnote = "footnote"
	StoryEndnote  = "endnote"
)

// Story is one logically distinct text stream within a document: the body, a
// specific header/footer reference, or a single footnote/endnote. Stories are
// read-only projections that exist only for the duration of one extraction
// pass.
type Story struct {
	// Name is the symbolic story identifier: "body",
	// "header--Section1--default", "footnote--2", ...
	Name string
	// Kind is the story family: body, header, footer, footnote, endnote.
	Kind string
	// Section is the 1-based section ordinal for header/footer stories.
	Section int
	// RefType is the header/footer reference type: default, first, even.
	RefType string
	// NoteID is the note identifier for footnote/endnote stories.
	NoteID int
	// Paragraphs holds the story's w:p elements in document order.
	Paragraphs []*Node
}

// Stories enumerates every story in the package: the body, every
// header/footer part referenced by every section's sectPr (one story per
// reference context, so two sections sharing a physical part still yield two
// stories), and every footnote/endnote with id > 0. Missing or malformed
// optional parts are skipped silently; a missing or unparsable main document
// part is the one fatal condition.
func Stories(pkg *Package) ([]Story, error) {
	doc, err := documentRoot(pkg)
	if err != nil {
		return nil, err
	}

	stories := []Story{{
		Name:       StoryBody,
		Kind:       StoryBody,
		Paragraphs: bodyParagraphs(doc),
	}}

	stories = append(stories, sectionStories(pkg, doc)...)

	for _, kind := range []string{StoryFootnote, StoryEndnote} {
		notes, err := loadNotesForKind(pkg, kind)
		if err != nil {
			continue
		}
		for _, note := range notes {
			stories = append(stories, Story{
				Name:       fmt.Sprintf("%s--%d", kind, note.ID),
				Kind:       kind,
				NoteID:     note.ID,
				Paragraphs: note.Paragraphs,
			})
		}
	}

	return stories, nil
}

// documentRoot parses word/document.xml. Any failure here is fatal for the
// file.
func documentRoot(pkg *Package) (*Node, error) {
	data, err := pkg.ReadPart(PartDocument)
	if err != nil {
		return nil, err
	}
	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PartDocument, err)
	}
	return root, nil
}

// BodyParagraphs returns the main document body's paragraphs in document
// order, including paragraphs nested inside tables.
func BodyParagraphs(pkg *Package) ([]*Node, error) {
	doc, err := documentRoot(pkg)
	if err != nil {
		return nil, err
	}
	return bodyParagraphs(doc), nil
}

func bodyParagraphs(doc *Node) []*Node {
	body := doc.First("body")
	if body == nil {
		return nil
	}
	return body.FindAll("p")
}

// sectionStories walks every sectPr in document order and resolves its
// header/footer references through the document relationships.
func sectionStories(pkg *Package, doc *Node) []Story {
	rels, err := pkg.Relationships(PartDocument)
	if err != nil {
		return nil
	}

	var stories []Story
	for i, sectPr := range doc.FindAll("sectPr") {
		section := i + 1
		for _, ref := range sectPr.Children {
			var kind string
			switch ref.Local {
			case "headerReference":
				kind = StoryHeader
			case "footerReference":
				kind = StoryFooter
			default:
				continue
			}

			refType := ref.Attr("type")
			if refType == "" {
				refType = "default"
			}
			target, ok := rels[ref.Attr("id")]
			if !ok {
				continue
			}
			data, err := pkg.ReadPart(target)
			if err != nil {
				continue
			}
			root, err := ParseXML(data)
			if err != nil {
				continue
			}
			stories = append(stories, Story{
				Name:       fmt.Sprintf("%s--Section%d--%s", kind, section, refType),
				Kind:       kind,
				Section:    section,
				RefType:    refType,
				Paragraphs: root.FindAll("p"),
			})
		}
	}
	return stories
}

// PartNode is a parsed auxiliary part paired with its package path.
type PartNode struct {
	Name string
	Root *Node
}

// HeaderParts parses every word/header*.xml part, sorted by name. Malformed
// parts are skipped.
func HeaderParts(pkg *Package) []PartNode {
	return partNodes(pkg, "word/header")
}

// FooterParts parses every word/footer*.xml part, sorted by name. Malformed
// parts are skipped.
func FooterParts(pkg *Package) []PartNode {
	return partNodes(pkg, "word/footer")
}

func partNodes(pkg *Package, prefix string) []PartNode {
	var names []string
	for _, name := range pkg.Parts() {
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".xml") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	parts := make([]PartNode, 0, len(names))
	for _, name := range names {
		data, err := pkg.ReadPart(name)
		if err != nil {
			continue
		}
		root, err := ParseXML(data)
		if err != nil {
			continue
		}
		parts = append(parts, PartNode{Name: name, Root: root})
	}
	return parts
}
