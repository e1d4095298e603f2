package extract

import (
	"testing"

	"github.com/lawdesk/lawdocx/internal/docxtest"
	"github.com/lawdesk/lawdocx/model"
	"github.com/lawdesk/lawdocx/patterns"
)

func TestCollectTodosDefaults(t *testing.T) {
	pkg := openPackage(t, docxtest.Body(
		"TODO finalize the closing schedule.",
		"Nothing to see here."))

	findings := CollectTodos(pkg, defaultTodos)

	if len(findings) != 1 {
		t.Fatalf("CollectTodos() returned %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Severity != model.SeverityWarning {
		t.Errorf("severity = %q, want warning", f.Severity)
	}
	if f.Details["matched_pattern"] != "TODO" || f.Details["raw_text"] != "TODO" {
		t.Errorf("details = %v", f.Details)
	}
	if f.Location.ParagraphIndexStart != 0 || f.Location.Story != "body" {
		t.Errorf("location = %+v", f.Location)
	}
	want := model.Context{Target: "TODO", After: " finalize the closing schedule."}
	if f.Context != want {
		t.Errorf("context = %+v, want %+v", f.Context, want)
	}
}

func TestCollectTodosMultipleMatches(t *testing.T) {
	pkg := openPackage(t, docxtest.Body("NTD: confirm amount. NTD: confirm date."))

	pats := patterns.MustCompile([]string{`\bNTD\b`})
	findings := CollectTodos(pkg, pats)

	if len(findings) != 2 {
		t.Fatalf("CollectTodos() returned %d findings, want 2", len(findings))
	}
}

func TestCollectTodosScansHeaderFooter(t *testing.T) {
	pkg := openPackage(t, docxtest.HeaderFooter(
		"TODO replace header legend", "TODO number pages", "clean body"))

	pats := patterns.MustCompile([]string{`\bTODO\b`})
	findings := CollectTodos(pkg, pats)

	stories := storySet(findings)
	if len(findings) != 2 || !stories["header"] || !stories["footer"] {
		t.Errorf("findings = %+v, want one header and one footer match", findings)
	}
}
