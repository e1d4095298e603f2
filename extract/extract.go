// Package extract implements the findings extractors. Each extractor walks a
// document's stories, flattens paragraphs into plain text with the marker
// recognizer it cares about, and emits uniform findings with context windows.
// The runner layer wraps extractors with the per-file envelope plumbing
// shared by the CLI and the HTTP API.
package extract

import (
	"sort"
	"strings"

	"github.com/lawdesk/lawdocx/model"
)

// Context window sizes, in bytes of the flattened text.
const (
	contextWindow = 100
	targetLimit   = 500
)

// textContext builds the before/target/after window around the half-open
// span [start, end) of text.
func textContext(text string, start, end int) model.Context {
	return windowedContext(text, start, end, contextWindow, targetLimit)
}

// windowedContext is textContext with explicit window and target caps.
// Offsets are clamped to the text bounds.
func windowedContext(text string, start, end, window, targetCap int) model.Context {
	start = min(max(start, 0), len(text))
	end = min(max(end, start), len(text))

	target := text[start:end]
	if len(target) > targetCap {
		target = target[:targetCap]
	}
	return model.Context{
		Before: text[max(0, start-window):start],
		Target: target,
		After:  text[end:min(len(text), end+window)],
	}
}

// joinParagraphs joins paragraph texts with single newline separators and
// returns the start offset of each paragraph within the joined string.
func joinParagraphs(paras []string) (string, []int) {
	starts := make([]int, len(paras))
	var sb strings.Builder
	for i, p := range paras {
		if i > 0 {
			sb.WriteByte('\n')
		}
		starts[i] = sb.Len()
		sb.WriteString(p)
	}
	return sb.String(), starts
}

// paragraphAt maps a byte offset in a joined story text back to the index of
// the paragraph containing it, clamped to the valid range.
func paragraphAt(starts []int, offset int) int {
	if len(starts) == 0 {
		return 0
	}
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	return min(max(idx, 0), len(starts)-1)
}

// paraLocation points at a single paragraph within a story.
func paraLocation(story string, index int) model.Location {
	return model.Location{
		Story:               story,
		ParagraphIndexStart: index,
		ParagraphIndexEnd:   index,
	}
}

// errorFinding is the uniform extraction-error finding: one per failed file,
// appended to whatever findings were already collected.
func errorFinding(ftype, story, message string) model.Finding {
	return model.Finding{
		ID:       model.NewFindingID(),
		Type:     ftype,
		Severity: model.SeverityError,
		Location: paraLocation(story, 0),
		Details:  model.Details{"category": "error", "message": message},
	}
}
