package docx

import "strings"

// MarkerAction tells the flattener how to treat a recognized element.
type MarkerAction int

const (
	// ActionSpanSubtree consumes the element's whole subtree as one marked
	// span; the traversal does not re-enter marker handling inside it.
	ActionSpanSubtree MarkerAction = iota
	// ActionPlaceholder injects synthetic text at the current offset and
	// records its span.
	ActionPlaceholder
	// ActionPoint records the current offset without contributing text.
	ActionPoint
)

// Marker describes a recognized element: what to do with it and what the
// resulting span should carry.
type Marker struct {
	Action      MarkerAction
	Kind        string
	ID          string
	Attrs       map[string]string
	Placeholder string
	// DeletedText includes w:delText content when capturing the subtree.
	DeletedText bool
}

// MarkedSpan is a character range of interest within a paragraph's flattened
// text. Start/End are half-open offsets into the returned string. Point
// markers have Start == End.
type MarkedSpan struct {
	Kind  string
	ID    string
	Attrs map[string]string
	Text  string
	Start int
	End   int
}

// Recognizer identifies elements needing special handling during flattening.
// Each extractor supplies its own; the traversal and offset bookkeeping are
// shared.
type Recognizer interface {
	// Recognize returns the marker for an element, or ok=false to let the
	// traversal descend normally.
	Recognize(n *Node) (Marker, bool)
	// IncludeDeletedText reports whether w:delText outside markers
	// contributes to the flattened text.
	IncludeDeletedText() bool
}

// Flatten converts a paragraph's element tree into a single string plus the
// spans recognized by rec. Plain w:t nodes always contribute their literal
// content at the current offset; rec may be nil for a text-only projection.
func Flatten(p *Node, rec Recognizer) (string, []MarkedSpan) {
	var sb strings.Builder
	var spans []MarkedSpan

	includeDeleted := rec != nil && rec.IncludeDeletedText()

	var walk func(n *Node)
	walk = func(n *Node) {
		if rec != nil {
			if m, ok := rec.Recognize(n); ok {
				start := sb.Len()
				switch m.Action {
				case ActionSpanSubtree:
					text := subtreeText(n, m.DeletedText)
					sb.WriteString(text)
					spans = append(spans, MarkedSpan{
						Kind:  m.Kind,
						ID:    m.ID,
						Attrs: m.Attrs,
						Text:  text,
						Start: start,
						End:   sb.Len(),
					})
				case ActionPlaceholder:
					sb.WriteString(m.Placeholder)
					spans = append(spans, MarkedSpan{
						Kind:  m.Kind,
						ID:    m.ID,
						Attrs: m.Attrs,
						Text:  m.Placeholder,
						Start: start,
						End:   sb.Len(),
					})
				case ActionPoint:
					spans = append(spans, MarkedSpan{
						Kind:  m.Kind,
						ID:    m.ID,
						Attrs: m.Attrs,
						Start: start,
						End:   start,
					})
				}
				return
			}
		}

		switch n.Local {
		case "t":
			sb.WriteString(n.Text)
		case "delText":
			if includeDeleted {
				sb.WriteString(n.Text)
			}
		default:
			for _, child := range n.Children {
				walk(child)
			}
		}
	}

	for _, child := range p.Children {
		walk(child)
	}
	return sb.String(), spans
}

// ParagraphText returns the plain-text projection of a paragraph: every w:t
// in document order, no markers.
func ParagraphText(p *Node) string {
	text, _ := Flatten(p, nil)
	return text
}

// subtreeText concatenates the text content of a subtree in document order,
// optionally including w:delText nodes.
func subtreeText(n *Node, includeDeleted bool) string {
	var sb strings.Builder
	var walk func(node *Node)
	walk = func(node *Node) {
		switch node.Local {
		case "t":
			sb.WriteString(node.Text)
		case "delText":
			if includeDeleted {
				sb.WriteString(node.Text)
			}
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// Tracked-change element locals mapped by the change recognizer.
var trackedChangeTags = map[string]bool{
	"ins":      true,
	"del":      true,
	"moveFrom": true,
	"moveTo":   true,
}

type changeRecognizer struct{}

// ChangeMarkers recognizes tracked-change subtrees (w:ins, w:del, w:moveFrom,
// w:moveTo). Deleted text contributes to the flattened string so that context
// windows show what was removed.
func ChangeMarkers() Recognizer { return changeRecognizer{} }

func (changeRecognizer) IncludeDeletedText() bool { return true }

func (changeRecognizer) Recognize(n *Node) (Marker, bool) {
	if !trackedChangeTags[n.Local] {
		return Marker{}, false
	}
	attrs := make(map[string]string, 2)
	if author := n.Attr("author"); author != "" {
		attrs["author"] = author
	}
	if date := n.Attr("date"); date != "" {
		attrs["date"] = date
	}
	return Marker{
		Action:      ActionSpanSubtree,
		Kind:        n.Local,
		Attrs:       attrs,
		DeletedText: true,
	}, true
}

type highlightRecognizer struct{}

// HighlightMarkers recognizes runs carrying a w:highlight property. The span
// covers the run's text; a highlighted run with no text yields a span with
// empty Text, which callers skip.
func HighlightMarkers() Recognizer { return highlightRecognizer{} }

func (highlightRecognizer) IncludeDeletedText() bool { return false }

func (highlightRecognizer) Recognize(n *Node) (Marker, bool) {
	if n.Local != "r" {
		return Marker{}, false
	}
	highlights := n.FindAll("highlight")
	if len(highlights) == 0 {
		return Marker{}, false
	}
	color := highlights[0].Attr("val")
	if color == "" {
		color = "yellow"
	}
	return Marker{
		Action: ActionSpanSubtree,
		Kind:   "highlight",
		Attrs:  map[string]string{"color": color},
	}, true
}

type noteRefRecognizer struct{}

// NoteReferenceMarkers recognizes w:footnoteReference and w:endnoteReference
// elements, injecting "[FN <id>]" / "[EN <id>]" placeholder tokens into the
// flattened text.
func NoteReferenceMarkers() Recognizer { return noteRefRecognizer{} }

func (noteRefRecognizer) IncludeDeletedText() bool { return false }

func (noteRefRecognizer) Recognize(n *Node) (Marker, bool) {
	var kind, label string
	switch n.Local {
	case "footnoteReference":
		kind, label = "footnote", "FN"
	case "endnoteReference":
		kind, label = "endnote", "EN"
	default:
		return Marker{}, false
	}
	id := n.Attr("id")
	display := id
	if display == "" {
		display = "?"
	}
	return Marker{
		Action:      ActionPlaceholder,
		Kind:        kind,
		ID:          id,
		Placeholder: "[" + label + " " + display + "]",
	}, true
}

type commentRangeRecognizer struct{}

// CommentRangeMarkers recognizes w:commentRangeStart and w:commentRangeEnd
// point markers, recording the running offset keyed by comment ID. Deleted
// text contributes to the projection so offsets match what a reviewer sees
// with markup visible.
func CommentRangeMarkers() Recognizer { return commentRangeRecognizer{} }

func (commentRangeRecognizer) IncludeDeletedText() bool { return true }

func (commentRangeRecognizer) Recognize(n *Node) (Marker, bool) {
	if n.Local != "commentRangeStart" && n.Local != "commentRangeEnd" {
		return Marker{}, false
	}
	id := n.Attr("id")
	if id == "" {
		return Marker{}, false
	}
	return Marker{Action: ActionPoint, Kind: n.Local, ID: id}, true
}
