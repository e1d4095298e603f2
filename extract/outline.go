package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// Manual-numbering shapes: "1. ", "1) ", "1.a ", "(a) ", and roman-numeral
// variants with a dot or closing paren.
var manualNumbering = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+\.\s`),
	regexp.MustCompile(`^\s*\d+\)\s`),
	regexp.MustCompile(`^\s*\d+\.[A-Za-z]\s`),
	regexp.MustCompile(`^\s*\([A-Za-z]\)\s`),
	regexp.MustCompile(`(?i)^\s*[ivxlcdm]+\)\s`),
	regexp.MustCompile(`(?i)^\s*[ivxlcdm]+\.\s`),
}

// Style names containing any of these are heading styles, where numbering is
// expected and never reported.
var headingKeywords = []string{"heading ", "title", "article", "section", "clause", "heading-"}

const outlineTargetLimit = 80

// CollectOutline checks body paragraphs for outline numbering trouble:
// manually typed numbers in non-heading paragraphs are errors, automatic
// numbering applied to non-heading styles is a warning. Heading-styled
// paragraphs are skipped entirely.
func CollectOutline(pkg *docx.Package) []model.Finding {
	body, err := docx.BodyParagraphs(pkg)
	if err != nil {
		return []model.Finding{errorFinding(model.TypeOutline, docx.StoryBody,
			fmt.Sprintf("Outline scan failed: %v", err))}
	}

	// A malformed styles part reads as an empty style table; lookups then
	// fall back to the raw style ID.
	styles, err := docx.StyleNames(pkg)
	if err != nil {
		styles = map[string]string{}
	}

	var findings []model.Finding
	for index, p := range body {
		text := docx.ParagraphText(p)

		styleID := ""
		var numPr bool
		if pPr := p.First("pPr"); pPr != nil {
			if pStyle := pPr.First("pStyle"); pStyle != nil {
				styleID = pStyle.Attr("val")
			}
			numPr = pPr.First("numPr") != nil
		}
		styleName := styles[styleID]
		if styleName == "" {
			styleName = styleID
		}
		if isHeadingStyle(styleName) {
			continue
		}

		category, severity := "", ""
		switch {
		case hasManualNumbering(text):
			category, severity = "manual_numbering", model.SeverityError
		case numPr:
			category, severity = "suspicious_numbering", model.SeverityWarning
		default:
			continue
		}

		findings = append(findings, model.Finding{
			ID:       model.NewFindingID(),
			Type:     model.TypeOutline,
			Severity: severity,
			Location: paraLocation(docx.StoryBody, index),
			Context:  windowedContext(text, 0, min(len(text), outlineTargetLimit), contextWindow, outlineTargetLimit),
			Details: model.Details{
				"category":   category,
				"style_name": styleName,
			},
		})
	}

	return findings
}

func isHeadingStyle(name string) bool {
	if name == "" {
		return false
	}
	lowered := strings.ToLower(name)
	for _, keyword := range headingKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func hasManualNumbering(text string) bool {
	for _, pattern := range manualNumbering {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
