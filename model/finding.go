package model

import (
	"strings"

	"github.com/google/uuid"
)

// Severity levels, ordered for filtering: error > warning > info.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// SeverityRank returns the ordering rank of a severity level. Unknown levels
// rank alongside "info" so that malformed input never filters more
// aggressively than intended.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	default:
		return 0
	}
}

// ValidSeverity reports whether s is one of the three recognized levels.
func ValidSeverity(s string) bool {
	return s == SeverityInfo || s == SeverityWarning || s == SeverityError
}

// Finding is one reported observation: a match, an extracted entity, or an
// extraction error. Findings are independently serializable and appear in
// document traversal order (story, then paragraph, then match) within a file.
type Finding struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Severity string   `json:"severity"`
	Location Location `json:"location"`
	Context  Context  `json:"context"`
	Details  Details  `json:"details"`
}

// Finding type tags emitted by the extractors.
const (
	TypeInsertion   = "insertion"
	TypeDeletion    = "deletion"
	TypeMoveFrom    = "move_from"
	TypeMoveTo      = "move_to"
	TypeComment     = "comment"
	TypeFootnote    = "footnote"
	TypeEndnote     = "endnote"
	TypeHighlight   = "highlight"
	TypeBracket     = "bracket"
	TypeTodo        = "todo"
	TypeBoilerplate = "boilerplate"
	TypeOutline     = "outline"
	TypeMetadata    = "metadata"
)

// Location is a structural pointer into a document. Story names are symbolic
// ("body", "header--Section1--first", "footnote--2"); paragraph indices are
// 0-based and inclusive. Optional fields are omitted from JSON when unset.
type Location struct {
	Story               string    `json:"story"`
	ParagraphIndexStart int       `json:"paragraph_index_start"`
	ParagraphIndexEnd   int       `json:"paragraph_index_end"`
	CommentID           string    `json:"comment_id,omitempty"`
	SectionNumber       int       `json:"section_number,omitempty"`
	HeaderType          string    `json:"header_type,omitempty"`
	TargetLocation      *Location `json:"target_location,omitempty"`
	AnchorFallback      bool      `json:"anchor_fallback,omitempty"`
}

// Context is a window of plain text surrounding the extracted span. Before
// and After are capped at a fixed window; Target is capped separately.
type Context struct {
	Before string `json:"before"`
	Target string `json:"target"`
	After  string `json:"after"`
}

// Details carries the extractor-specific payload of a finding. Keys vary by
// extractor (matched_pattern, author, resolved, note_text, ...); values
// serialize with deterministic key order.
type Details map[string]any

// NewFindingID returns a short opaque finding identifier. IDs are unique
// within a run with overwhelming probability; no global uniqueness is
// guaranteed or required.
func NewFindingID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
