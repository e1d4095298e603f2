package extract

import (
	"fmt"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// changeTypes maps tracked-change element names to finding types.
var changeTypes = map[string]string{
	"ins":      model.TypeInsertion,
	"del":      model.TypeDeletion,
	"moveFrom": model.TypeMoveFrom,
	"moveTo":   model.TypeMoveTo,
}

// CollectChanges walks every story for tracked-change markup and emits one
// warning finding per insertion, deletion, or move. Deleted text stays in the
// flattened projection so context windows show what was removed.
func CollectChanges(pkg *docx.Package) []model.Finding {
	var findings []model.Finding

	body, err := docx.BodyParagraphs(pkg)
	if err != nil {
		return append(findings, errorFinding(model.TypeInsertion, docx.StoryBody,
			fmt.Sprintf("Change extraction failed: %v", err)))
	}
	findings = append(findings, paragraphChanges(docx.StoryBody, body)...)

	for _, part := range docx.HeaderParts(pkg) {
		findings = append(findings, paragraphChanges(docx.StoryHeader, part.Root.FindAll("p"))...)
	}
	for _, part := range docx.FooterParts(pkg) {
		findings = append(findings, paragraphChanges(docx.StoryFooter, part.Root.FindAll("p"))...)
	}

	for _, kind := range []struct {
		part, tag, story string
	}{
		{docx.PartFootnotes, "footnote", docx.StoryFootnote},
		{docx.PartEndnotes, "endnote", docx.StoryEndnote},
	} {
		notes, err := docx.Notes(pkg, kind.part, kind.tag)
		if err != nil {
			return append(findings, errorFinding(model.TypeInsertion, docx.StoryBody,
				fmt.Sprintf("Change extraction failed: %v", err)))
		}
		for _, note := range notes {
			story := fmt.Sprintf("%s--%d", kind.story, note.ID)
			findings = append(findings, paragraphChanges(story, note.Paragraphs)...)
		}
	}

	return findings
}

// paragraphChanges flattens each paragraph with the change recognizer and
// converts its marked spans into findings.
func paragraphChanges(story string, paragraphs []*docx.Node) []model.Finding {
	var findings []model.Finding
	for index, p := range paragraphs {
		text, spans := docx.Flatten(p, docx.ChangeMarkers())
		for _, span := range spans {
			ftype, ok := changeTypes[span.Kind]
			if !ok {
				continue
			}
			findings = append(findings, model.Finding{
				ID:       model.NewFindingID(),
				Type:     ftype,
				Severity: model.SeverityWarning,
				Location: paraLocation(story, index),
				Context:  textContext(text, span.Start, span.End),
				Details:  changeDetails(ftype, span),
			})
		}
	}
	return findings
}

func changeDetails(ftype string, span docx.MarkedSpan) model.Details {
	field := "deleted_text"
	if ftype == model.TypeInsertion || ftype == model.TypeMoveTo {
		field = "inserted_text"
	}
	details := model.Details{field: span.Text}
	if author := span.Attrs["author"]; author != "" {
		details["author"] = author
	}
	if date := span.Attrs["date"]; date != "" {
		details["date"] = date
	}
	return details
}
