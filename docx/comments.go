package docx

import (
	"errors"
	"fmt"
	"strings"
)

// Comment is one entry from word/comments.xml. ParaIDs are the w14:paraId
// values of the comment's own paragraphs, the join key into
// commentsExtended.xml.
type Comment struct {
	ID         string
	Author     string
	Initials   string
	Date       string
	Paragraphs []string
	ParaIDs    []string
}

// Text returns the comment's paragraph texts joined with newlines.
func (c Comment) Text() string {
	return strings.Join(c.Paragraphs, "\n")
}

// Comments parses word/comments.xml in document order. A missing part yields
// a nil slice (the document simply has no comments).
func Comments(pkg *Package) ([]Comment, error) {
	data, err := pkg.ReadPart(PartComments)
	if errors.Is(err, ErrPartMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PartComments, err)
	}

	var comments []Comment
	for _, elem := range root.FindAll("comment") {
		c := Comment{
			ID:       elem.Attr("id"),
			Author:   elem.Attr("author"),
			Initials: elem.Attr("initials"),
			Date:     elem.Attr("date"),
		}
		for _, p := range elem.FindAll("p") {
			c.Paragraphs = append(c.Paragraphs, ParagraphText(p))
			if paraID := p.Attr("paraId"); paraID != "" {
				c.ParaIDs = append(c.ParaIDs, paraID)
			}
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// CommentExtended is the modern threading state for one comment paragraph:
// resolved ("done") flag and the parent paragraph link for replies. Done is
// nil when the attribute is absent.
type CommentExtended struct {
	Done         *bool
	ParentParaID string
}

// CommentsExtended parses the optional word/commentsExtended.xml part into a
// map keyed by w15:paraId. A missing part yields an empty map.
func CommentsExtended(pkg *Package) (map[string]CommentExtended, error) {
	data, err := pkg.ReadPart(PartCommentsExtended)
	if errors.Is(err, ErrPartMissing) {
		return map[string]CommentExtended{}, nil
	}
	if err != nil {
		return nil, err
	}

	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PartCommentsExtended, err)
	}

	extended := make(map[string]CommentExtended)
	for _, elem := range root.FindAll("commentEx") {
		paraID := elem.Attr("paraId")
		if paraID == "" {
			continue
		}
		entry := CommentExtended{ParentParaID: elem.Attr("paraIdParent")}
		if done := elem.Attr("done"); done != "" {
			v := done == "1" || strings.EqualFold(done, "true")
			entry.Done = &v
		}
		extended[paraID] = entry
	}
	return extended, nil
}
