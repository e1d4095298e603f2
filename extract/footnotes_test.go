package extract

import (
	"strings"
	"testing"

	"github.com/lawdesk/lawdocx/internal/docxtest"
	"github.com/lawdesk/lawdocx/model"
)

func TestCollectFootnotesResolvesNoteText(t *testing.T) {
	pkg := openPackage(t, docxtest.Notes("Footnote body text", "Endnote body text"))

	findings := CollectFootnotes(pkg)

	if len(findings) != 2 {
		t.Fatalf("CollectFootnotes() returned %d findings, want 2", len(findings))
	}

	byType := findingsByType(findings)
	fn := byType[model.TypeFootnote][0]
	if fn.Details["note_id"] != 1 {
		t.Errorf("footnote note_id = %v, want 1", fn.Details["note_id"])
	}
	if fn.Details["note_text"] != "Footnote body text" {
		t.Errorf("footnote note_text = %v", fn.Details["note_text"])
	}
	if _, flagged := fn.Details["status"]; flagged {
		t.Error("resolved footnote should not carry a status flag")
	}
	if fn.Context.Target != "[FN 1]" {
		t.Errorf("footnote target = %q, want [FN 1]", fn.Context.Target)
	}
	if !strings.Contains(fn.Context.Before, "claim") {
		t.Errorf("footnote before = %q, want to contain %q", fn.Context.Before, "claim")
	}
	if fn.Severity != model.SeverityInfo {
		t.Errorf("severity = %q, want info", fn.Severity)
	}

	en := byType[model.TypeEndnote][0]
	if en.Details["note_type"] != "endnote" || en.Details["note_id"] != 2 {
		t.Errorf("endnote details = %v", en.Details)
	}
	if en.Context.Target != "[EN 2]" {
		t.Errorf("endnote target = %q, want [EN 2]", en.Context.Target)
	}
}

func TestCollectFootnotesDanglingReference(t *testing.T) {
	pkg := openPackage(t, docxtest.DanglingNote())

	findings := CollectFootnotes(pkg)

	if len(findings) != 1 {
		t.Fatalf("CollectFootnotes() returned %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Details["note_text"] != "" {
		t.Errorf("note_text = %v, want empty", f.Details["note_text"])
	}
	if f.Details["status"] != "missing note text" {
		t.Errorf("status = %v, want %q", f.Details["status"], "missing note text")
	}
	if f.Details["note_id"] != 7 {
		t.Errorf("note_id = %v, want 7", f.Details["note_id"])
	}
	if f.Severity != model.SeverityInfo {
		t.Errorf("severity = %q, dangling reference is not an error", f.Severity)
	}
}

func TestCollectFootnotesAllStories(t *testing.T) {
	pkg := openPackage(t, docxtest.MultistoryNotes())

	findings := CollectFootnotes(pkg)

	if len(findings) != 4 {
		t.Fatalf("CollectFootnotes() returned %d findings, want 4", len(findings))
	}

	stories := storySet(findings)
	for _, story := range []string{
		"body",
		"header--Section1--default",
		"footer--Section1--default",
		"footnote--2",
	} {
		if !stories[story] {
			t.Errorf("missing story %q in %v", story, stories)
		}
	}

	var nested *model.Finding
	for i := range findings {
		if findings[i].Location.Story == "footnote--2" {
			nested = &findings[i]
		}
	}
	if nested == nil {
		t.Fatal("no finding in footnote--2 story")
	}
	if nested.Details["note_type"] != "endnote" {
		t.Errorf("nested note_type = %v, want endnote", nested.Details["note_type"])
	}
	if nested.Details["note_text"] != "Shared endnote" {
		t.Errorf("nested note_text = %v", nested.Details["note_text"])
	}
}

func TestCollectFootnotesTwoReferencesSameNote(t *testing.T) {
	body := `<w:p><w:r><w:t>First</w:t></w:r><w:r><w:footnoteReference w:id="1"/></w:r></w:p>` +
		`<w:p><w:r><w:t>Second</w:t></w:r><w:r><w:footnoteReference w:id="1"/></w:r></w:p>`
	footnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:id="1"><w:p><w:r><w:t>Shared note</w:t></w:r></w:p></w:footnote>
</w:footnotes>`
	b := docxtest.NewBuilder().Document(body).Part("word/footnotes.xml", footnotes)
	pkg := openPackage(t, b)

	findings := CollectFootnotes(pkg)

	// One finding per reference site, not per note.
	var sites int
	for _, f := range findings {
		if f.Location.Story == "body" {
			sites++
			if f.Details["note_text"] != "Shared note" {
				t.Errorf("note_text = %v", f.Details["note_text"])
			}
		}
	}
	if sites != 2 {
		t.Errorf("got %d body reference findings, want 2", sites)
	}
}
