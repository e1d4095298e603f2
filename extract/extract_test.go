package extract

import (
	"testing"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/internal/docxtest"
	"github.com/lawdesk/lawdocx/model"
)

func openPackage(t *testing.T, b *docxtest.Builder) *docx.Package {
	t.Helper()
	pkg, err := docx.OpenBytes(b.Bytes(t))
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}
	t.Cleanup(func() { pkg.Close() })
	return pkg
}

// findingsByType indexes findings by their type tag.
func findingsByType(findings []model.Finding) map[string][]model.Finding {
	byType := make(map[string][]model.Finding)
	for _, f := range findings {
		byType[f.Type] = append(byType[f.Type], f)
	}
	return byType
}

func storySet(findings []model.Finding) map[string]bool {
	stories := make(map[string]bool)
	for _, f := range findings {
		stories[f.Location.Story] = true
	}
	return stories
}

func TestTextContext(t *testing.T) {
	text := "alpha bravo charlie delta"

	got := textContext(text, 6, 11)
	want := model.Context{Before: "alpha ", Target: "bravo", After: " charlie delta"}
	if got != want {
		t.Errorf("textContext() = %+v, want %+v", got, want)
	}
}

func TestTextContextClampsOffsets(t *testing.T) {
	got := textContext("short", -3, 99)
	want := model.Context{Before: "", Target: "short", After: ""}
	if got != want {
		t.Errorf("textContext() = %+v, want %+v", got, want)
	}
}

func TestWindowedContextCapsTarget(t *testing.T) {
	got := windowedContext("xxabcdefghijyy", 2, 12, 100, 4)
	if got.Target != "abcd" {
		t.Errorf("Target = %q, want %q", got.Target, "abcd")
	}
	if got.Before != "xx" {
		t.Errorf("Before = %q, want %q", got.Before, "xx")
	}
	// After still starts at the uncapped span end.
	if got.After != "yy" {
		t.Errorf("After = %q, want %q", got.After, "yy")
	}
}

func TestJoinParagraphs(t *testing.T) {
	text, starts := joinParagraphs([]string{"one", "two", "three"})

	if text != "one\ntwo\nthree" {
		t.Errorf("joined text = %q", text)
	}
	wantStarts := []int{0, 4, 8}
	for i, want := range wantStarts {
		if starts[i] != want {
			t.Errorf("starts[%d] = %d, want %d", i, starts[i], want)
		}
	}
}

func TestParagraphAt(t *testing.T) {
	starts := []int{0, 4, 8}

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{3, 0},  // separator after paragraph 0
		{4, 1},
		{7, 1},
		{8, 2},
		{100, 2}, // clamped to last paragraph
		{-1, 0},
	}
	for _, tt := range tests {
		if got := paragraphAt(starts, tt.offset); got != tt.want {
			t.Errorf("paragraphAt(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestErrorFindingShape(t *testing.T) {
	f := errorFinding(model.TypeBracket, "body", "boom")

	if f.Severity != model.SeverityError {
		t.Errorf("Severity = %q, want error", f.Severity)
	}
	if f.Location.Story != "body" || f.Location.ParagraphIndexStart != 0 {
		t.Errorf("Location = %+v", f.Location)
	}
	if f.Details["category"] != "error" || f.Details["message"] != "boom" {
		t.Errorf("Details = %v", f.Details)
	}
	if f.Context != (model.Context{}) {
		t.Errorf("Context = %+v, want empty", f.Context)
	}
}
