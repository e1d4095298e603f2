package extract

import (
	"fmt"
	"regexp"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// CollectBoilerplate scans header and footer stories for standing legends:
// draft stamps, confidentiality notices, copyright lines, page furniture.
// Body text is never scanned. Locations carry the owning section number and
// reference type alongside the coarse story name.
func CollectBoilerplate(pkg *docx.Package, patterns []*regexp.Regexp) []model.Finding {
	stories, err := docx.Stories(pkg)
	if err != nil {
		return []model.Finding{errorFinding(model.TypeBoilerplate, docx.StoryHeader,
			fmt.Sprintf("Boilerplate scan failed: %v", err))}
	}

	var findings []model.Finding
	for _, story := range stories {
		if story.Kind != docx.StoryHeader && story.Kind != docx.StoryFooter {
			continue
		}
		for index, p := range story.Paragraphs {
			text := docx.ParagraphText(p)
			for _, pattern := range patterns {
				for _, loc := range pattern.FindAllStringIndex(text, -1) {
					findings = append(findings, model.Finding{
						ID:       model.NewFindingID(),
						Type:     model.TypeBoilerplate,
						Severity: model.SeverityWarning,
						Location: model.Location{
							Story:               story.Kind,
							ParagraphIndexStart: index,
							ParagraphIndexEnd:   index,
							SectionNumber:       story.Section,
							HeaderType:          story.RefType,
						},
						Context: textContext(text, loc[0], loc[1]),
						Details: model.Details{"matched_pattern": text[loc[0]:loc[1]]},
					})
				}
			}
		}
	}

	return findings
}
