package extract

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// bracketMatch is one matched span within a story's joined text.
type bracketMatch struct {
	start, end int
	pattern    string
}

// CollectBrackets scans each story's joined text for bracketed placeholders.
// With no patterns it finds maximal balanced [...] spans, nested spans
// included; with patterns it applies each regex in order, multi-line matches
// spanning paragraph boundaries allowed. Findings report the paragraph range
// the span covers.
func CollectBrackets(pkg *docx.Package, patterns []*regexp.Regexp) []model.Finding {
	var findings []model.Finding

	body, err := docx.BodyParagraphs(pkg)
	if err != nil {
		return append(findings, errorFinding(model.TypeBracket, docx.StoryBody,
			fmt.Sprintf("Bracket scan failed: %v", err)))
	}

	type storyText struct {
		name       string
		paragraphs []string
	}
	stories := []storyText{
		{docx.StoryBody, paragraphTexts(body)},
		{docx.StoryHeader, partParagraphTexts(docx.HeaderParts(pkg))},
		{docx.StoryFooter, partParagraphTexts(docx.FooterParts(pkg))},
	}

	for _, kind := range []struct {
		part, tag, story string
	}{
		{docx.PartFootnotes, "footnote", docx.StoryFootnote},
		{docx.PartEndnotes, "endnote", docx.StoryEndnote},
	} {
		notes, err := docx.Notes(pkg, kind.part, kind.tag)
		if err != nil {
			findings = append(findings, errorFinding(model.TypeBracket, docx.StoryBody,
				fmt.Sprintf("Failed to load notes: %v", err)))
			continue
		}
		if len(notes) == 0 {
			continue
		}
		// One pseudo-paragraph per note body.
		texts := make([]string, 0, len(notes))
		for _, note := range notes {
			texts = append(texts, note.Text())
		}
		stories = append(stories, storyText{kind.story, texts})
	}

	for _, story := range stories {
		if len(story.paragraphs) == 0 {
			continue
		}
		text, starts := joinParagraphs(story.paragraphs)

		var matches []bracketMatch
		if len(patterns) > 0 {
			for _, pattern := range patterns {
				for _, loc := range pattern.FindAllStringIndex(text, -1) {
					matches = append(matches, bracketMatch{loc[0], loc[1], pattern.String()})
				}
			}
		} else {
			matches = balancedBrackets(text)
		}

		for _, m := range matches {
			findings = append(findings, model.Finding{
				ID:       model.NewFindingID(),
				Type:     model.TypeBracket,
				Severity: model.SeverityWarning,
				Location: model.Location{
					Story:               story.name,
					ParagraphIndexStart: paragraphAt(starts, m.start),
					ParagraphIndexEnd:   paragraphAt(starts, max(m.start, m.end-1)),
				},
				Context: textContext(text, m.start, m.end),
				Details: model.Details{
					"matched_pattern": m.pattern,
					"raw_text":        text[m.start:m.end],
				},
			})
		}
	}

	return findings
}

// balancedBrackets returns every balanced [...] span via a stack scan,
// ordered by start offset. Unmatched closers are ignored; an unmatched opener
// closes nothing.
func balancedBrackets(text string) []bracketMatch {
	var spans []bracketMatch
	var stack []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			spans = append(spans, bracketMatch{start, i + 1, "default_brackets"})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

// paragraphTexts flattens paragraphs to plain text.
func paragraphTexts(paragraphs []*docx.Node) []string {
	texts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		texts = append(texts, docx.ParagraphText(p))
	}
	return texts
}

// partParagraphTexts merges the paragraph texts of several parts into one
// sequence, part order preserved.
func partParagraphTexts(parts []docx.PartNode) []string {
	var texts []string
	for _, part := range parts {
		texts = append(texts, paragraphTexts(part.Root.FindAll("p"))...)
	}
	return texts
}
