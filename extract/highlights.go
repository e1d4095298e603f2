package extract

import (
	"fmt"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// CollectHighlights emits one warning finding per highlighted run with
// non-empty text, across body, header, footer, and note stories. The color is
// the raw attribute value, defaulting to yellow when the attribute is bare.
func CollectHighlights(pkg *docx.Package) []model.Finding {
	var findings []model.Finding

	body, err := docx.BodyParagraphs(pkg)
	if err != nil {
		return append(findings, errorFinding(model.TypeHighlight, docx.StoryBody,
			fmt.Sprintf("Highlight extraction failed: %v", err)))
	}
	findings = append(findings, paragraphHighlights(docx.StoryBody, body, 0)...)

	for _, part := range docx.HeaderParts(pkg) {
		findings = append(findings, paragraphHighlights(docx.StoryHeader, part.Root.FindAll("p"), 0)...)
	}
	for _, part := range docx.FooterParts(pkg) {
		findings = append(findings, paragraphHighlights(docx.StoryFooter, part.Root.FindAll("p"), 0)...)
	}

	for _, kind := range []struct {
		part, tag, story string
	}{
		{docx.PartFootnotes, "footnote", docx.StoryFootnote},
		{docx.PartEndnotes, "endnote", docx.StoryEndnote},
	} {
		notes, err := docx.Notes(pkg, kind.part, kind.tag)
		if err != nil {
			return append(findings, errorFinding(model.TypeHighlight, docx.StoryBody,
				fmt.Sprintf("Highlight extraction failed: %v", err)))
		}
		// Note stories share one running paragraph index per part.
		index := 0
		for _, note := range notes {
			findings = append(findings, paragraphHighlights(kind.story, note.Paragraphs, index)...)
			index += len(note.Paragraphs)
		}
	}

	return findings
}

func paragraphHighlights(story string, paragraphs []*docx.Node, indexBase int) []model.Finding {
	var findings []model.Finding
	for i, p := range paragraphs {
		text, spans := docx.Flatten(p, docx.HighlightMarkers())
		for _, span := range spans {
			if span.Text == "" {
				continue
			}
			findings = append(findings, model.Finding{
				ID:       model.NewFindingID(),
				Type:     model.TypeHighlight,
				Severity: model.SeverityWarning,
				Location: paraLocation(story, indexBase+i),
				Context:  textContext(text, span.Start, span.End),
				Details:  model.Details{"highlight_color": span.Attrs["color"]},
			})
		}
	}
	return findings
}
