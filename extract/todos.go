package extract

import (
	"fmt"
	"regexp"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// CollectTodos scans body, header, and footer paragraphs for TODO-style
// leftovers: drafting markers, placeholder blanks, reviewer notes. One
// warning finding per match per pattern per paragraph, carrying the matched
// text itself.
func CollectTodos(pkg *docx.Package, patterns []*regexp.Regexp) []model.Finding {
	var findings []model.Finding

	body, err := docx.BodyParagraphs(pkg)
	if err != nil {
		return append(findings, errorFinding(model.TypeTodo, docx.StoryBody,
			fmt.Sprintf("Todo scan failed: %v", err)))
	}

	stories := []struct {
		name       string
		paragraphs []string
	}{
		{docx.StoryBody, paragraphTexts(body)},
		{docx.StoryHeader, partParagraphTexts(docx.HeaderParts(pkg))},
		{docx.StoryFooter, partParagraphTexts(docx.FooterParts(pkg))},
	}

	for _, story := range stories {
		for index, text := range story.paragraphs {
			for _, pattern := range patterns {
				for _, loc := range pattern.FindAllStringIndex(text, -1) {
					matched := text[loc[0]:loc[1]]
					findings = append(findings, model.Finding{
						ID:       model.NewFindingID(),
						Type:     model.TypeTodo,
						Severity: model.SeverityWarning,
						Location: paraLocation(story.name, index),
						Context:  textContext(text, loc[0], loc[1]),
						Details: model.Details{
							"matched_pattern": matched,
							"raw_text":        matched,
						},
					})
				}
			}
		}
	}

	return findings
}
