package report

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/lawdesk/lawdocx/model"
)

func sampleEnvelope() model.Envelope {
	return model.Envelope{
		LawdocxVersion: "0.4.0",
		Tool:           "lawdocx-changes",
		GeneratedAt:    "2026-08-30T12:00:00Z",
		Files: []model.FileEntry{{
			Path:   "contract.docx",
			SHA256: "abc123",
			Items: []model.Finding{
				{
					ID:       "f1",
					Type:     model.TypeInsertion,
					Severity: model.SeverityWarning,
					Location: model.Location{Story: "body"},
					Context:  model.Context{Target: "inserted text"},
					Details:  model.Details{"author": "Alice", "inserted_text": "inserted text"},
				},
				{
					ID:       "f2",
					Type:     model.TypeBracket,
					Severity: model.SeverityWarning,
					Location: model.Location{Story: "body", ParagraphIndexStart: 1, ParagraphIndexEnd: 2},
					Context:  model.Context{Target: "[multi\nline]"},
					Details:  model.Details{"raw_text": "[multi\nline]"},
				},
			},
		}},
	}
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(sampleEnvelope()))

	for _, want := range []string{
		"# lawdocx-changes report",
		"lawdocx version: 0.4.0",
		"### contract.docx",
		"sha256 `abc123`",
		"| warning | 2 |",
		"**insertion** (warning) at body ¶0",
		"author: Alice",
		"¶1-2",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown output missing %q:\n%s", want, md)
		}
	}
	// Newlines in context targets must not break the bullet line.
	if strings.Contains(md, "[multi\nline]") {
		t.Error("Markdown output contains an unescaped multi-line excerpt")
	}
}

func TestMarkdownExcerptRuneBoundary(t *testing.T) {
	// A multi-byte rune straddling the excerpt cap must be dropped whole,
	// not split into invalid bytes.
	long := strings.Repeat("a", 119) + "établi and more text past the cap"
	env := sampleEnvelope()
	env.Files[0].Items = []model.Finding{{
		ID:       "f1",
		Type:     model.TypeTodo,
		Severity: model.SeverityWarning,
		Location: model.Location{Story: "body"},
		Context:  model.Context{Target: long},
	}}

	md := Markdown(env)
	if !utf8.Valid(md) {
		t.Fatal("Markdown output is not valid UTF-8")
	}
	if !strings.Contains(string(md), strings.Repeat("a", 119)+"…") {
		t.Errorf("excerpt not trimmed at the rune boundary:\n%s", md)
	}
}

func TestMarkdownDeterministic(t *testing.T) {
	env := sampleEnvelope()
	if !bytes.Equal(Markdown(env), Markdown(env)) {
		t.Error("two renderings of the same envelope differ")
	}
}

func TestMarkdownNestedTools(t *testing.T) {
	env := model.Envelope{
		LawdocxVersion: "0.4.0",
		Tool:           "lawdocx-audit",
		GeneratedAt:    "2026-08-30T12:00:00Z",
		Files:          []model.FileEntry{},
		Tools: []model.Envelope{
			{Tool: "lawdocx-todos", Files: []model.FileEntry{{Path: "a.docx", Items: []model.Finding{}}}},
		},
	}

	md := string(Markdown(env))
	if !strings.Contains(md, "## Tool: lawdocx-todos") {
		t.Errorf("nested tool section missing:\n%s", md)
	}
	if !strings.Contains(md, "No findings.") {
		t.Errorf("empty file entry not rendered:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleEnvelope())
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	doc, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}

	var h1 string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h1" && n.FirstChild != nil {
			h1 = n.FirstChild.Data
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if !strings.Contains(h1, "lawdocx-changes") {
		t.Errorf("h1 = %q, want the tool name", h1)
	}
}
