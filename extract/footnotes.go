package extract

import (
	"fmt"
	"strconv"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// CollectFootnotes finds every footnote and endnote reference in every story
// (note bodies included, since a footnote can itself reference an endnote)
// and resolves the referenced note text by ID. A reference whose ID has no
// note body is annotated with a missing-text status, never dropped.
func CollectFootnotes(pkg *docx.Package) []model.Finding {
	stories, err := docx.Stories(pkg)
	if err != nil {
		return []model.Finding{errorFinding(model.TypeFootnote, docx.StoryBody,
			fmt.Sprintf("Footnote extraction failed: %v", err))}
	}

	footnotes, err := docx.NoteTexts(pkg, docx.PartFootnotes, "footnote")
	if err != nil {
		return []model.Finding{errorFinding(model.TypeFootnote, docx.StoryBody,
			fmt.Sprintf("Footnote extraction failed: %v", err))}
	}
	endnotes, err := docx.NoteTexts(pkg, docx.PartEndnotes, "endnote")
	if err != nil {
		return []model.Finding{errorFinding(model.TypeFootnote, docx.StoryBody,
			fmt.Sprintf("Footnote extraction failed: %v", err))}
	}

	var findings []model.Finding
	for _, story := range stories {
		for index, p := range story.Paragraphs {
			text, spans := docx.Flatten(p, docx.NoteReferenceMarkers())
			for _, span := range spans {
				findings = append(findings, noteFinding(story.Name, index, text, span, footnotes, endnotes))
			}
		}
	}
	return findings
}

func noteFinding(story string, index int, text string, span docx.MarkedSpan, footnotes, endnotes map[int]string) model.Finding {
	ftype := model.TypeFootnote
	noteMap := footnotes
	if span.Kind == "endnote" {
		ftype = model.TypeEndnote
		noteMap = endnotes
	}

	details := model.Details{"note_type": span.Kind}
	noteText := ""
	if id, err := strconv.Atoi(span.ID); err == nil {
		details["note_id"] = id
		noteText = noteMap[id]
	} else {
		details["note_id"] = nil
	}
	details["note_text"] = noteText
	if noteText == "" {
		details["status"] = "missing note text"
	}

	return model.Finding{
		ID:       model.NewFindingID(),
		Type:     ftype,
		Severity: model.SeverityInfo,
		Location: paraLocation(story, index),
		Context:  textContext(text, span.Start, span.End),
		Details:  details,
	}
}
