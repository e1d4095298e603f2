package docx

import (
	"testing"

	"github.com/lawdesk/lawdocx/internal/docxtest"
)

func storyNames(stories []Story) []string {
	names := make([]string, len(stories))
	for i, s := range stories {
		names[i] = s.Name
	}
	return names
}

func TestStoriesBodyOnly(t *testing.T) {
	pkg := openFixture(t, docxtest.Body("First para", "Second para"))

	stories, err := Stories(pkg)
	if err != nil {
		t.Fatalf("Stories() error = %v", err)
	}
	if len(stories) != 1 {
		t.Fatalf("Stories() = %v, want just the body", storyNames(stories))
	}
	body := stories[0]
	if body.Name != StoryBody || body.Kind != StoryBody {
		t.Errorf("story = %q/%q, want body/body", body.Name, body.Kind)
	}
	if len(body.Paragraphs) != 2 {
		t.Errorf("body has %d paragraphs, want 2", len(body.Paragraphs))
	}
}

func TestStoriesHeaderFooter(t *testing.T) {
	pkg := openFixture(t, docxtest.HeaderFooter("DRAFT", "Page footer", "Body text"))

	stories, err := Stories(pkg)
	if err != nil {
		t.Fatalf("Stories() error = %v", err)
	}

	want := []string{"body", "header--Section1--default", "footer--Section1--default"}
	got := storyNames(stories)
	if len(got) != len(want) {
		t.Fatalf("Stories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("story[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	header := stories[1]
	if header.Kind != StoryHeader || header.Section != 1 || header.RefType != "default" {
		t.Errorf("header story = %+v, want kind=header section=1 refType=default", header)
	}
	if got := ParagraphText(header.Paragraphs[0]); got != "DRAFT" {
		t.Errorf("header text = %q, want DRAFT", got)
	}
}

func TestStoriesNotes(t *testing.T) {
	pkg := openFixture(t, docxtest.Notes("See Smith v. Jones.", "Cf. the 2019 restatement."))

	stories, err := Stories(pkg)
	if err != nil {
		t.Fatalf("Stories() error = %v", err)
	}

	byName := make(map[string]Story, len(stories))
	for _, s := range stories {
		byName[s.Name] = s
	}

	fn, ok := byName["footnote--1"]
	if !ok {
		t.Fatalf("Stories() = %v, want footnote--1 present", storyNames(stories))
	}
	if fn.NoteID != 1 || fn.Kind != StoryFootnote {
		t.Errorf("footnote story = %+v, want NoteID=1 kind=footnote", fn)
	}
	if _, ok := byName["endnote--2"]; !ok {
		t.Errorf("Stories() = %v, want endnote--2 present", storyNames(stories))
	}
	// Separator pseudo-notes (id <= 0) never become stories.
	for name := range byName {
		if name == "footnote---1" || name == "footnote--0" {
			t.Errorf("Stories() includes separator story %q", name)
		}
	}
}

func TestStoriesUnresolvedHeaderReferenceSkipped(t *testing.T) {
	// sectPr references rId42 but the rels part maps nothing.
	b := docxtest.Body("Body").
		Document(docxtest.P("Body") + `<w:sectPr><w:headerReference w:type="default" r:id="rId42"/></w:sectPr>`)
	pkg := openFixture(t, b)

	stories, err := Stories(pkg)
	if err != nil {
		t.Fatalf("Stories() error = %v", err)
	}
	if len(stories) != 1 || stories[0].Name != StoryBody {
		t.Errorf("Stories() = %v, want just the body", storyNames(stories))
	}
}

func TestBodyParagraphsIncludesTables(t *testing.T) {
	body := docxtest.P("Lead") +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell para</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`
	pkg := openFixture(t, docxtest.NewBuilder().Document(body))

	paras, err := BodyParagraphs(pkg)
	if err != nil {
		t.Fatalf("BodyParagraphs() error = %v", err)
	}
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if got := ParagraphText(paras[1]); got != "Cell para" {
		t.Errorf("second paragraph = %q, want Cell para", got)
	}
}

func TestHeaderFooterParts(t *testing.T) {
	pkg := openFixture(t, docxtest.HeaderFooter("H", "F", "B"))

	headers := HeaderParts(pkg)
	if len(headers) != 1 || headers[0].Name != "word/header1.xml" {
		t.Fatalf("HeaderParts() = %v, want word/header1.xml", headers)
	}
	footers := FooterParts(pkg)
	if len(footers) != 1 || footers[0].Name != "word/footer1.xml" {
		t.Fatalf("FooterParts() = %v, want word/footer1.xml", footers)
	}
	if got := ParagraphText(headers[0].Root.FindAll("p")[0]); got != "H" {
		t.Errorf("header text = %q, want H", got)
	}
}
