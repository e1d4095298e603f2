package extract

import (
	"reflect"
	"testing"

	"github.com/lawdesk/lawdocx/input"
	"github.com/lawdesk/lawdocx/internal/docxtest"
)

func toolNames(tools []NamedRunner) []string {
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestAuditRunsEveryTool(t *testing.T) {
	files := []input.Loaded{loadedFixture(t, docxtest.TrackedChanges(), "deal.docx")}
	tools := Tools(Options{})

	env, totals := Audit(files, tools, "")

	if env.Tool != "lawdocx-audit" {
		t.Errorf("tool = %q, want lawdocx-audit", env.Tool)
	}
	if len(env.Files) != 0 {
		t.Errorf("outer envelope carries %d file entries, want 0", len(env.Files))
	}
	if len(env.Tools) != len(tools) {
		t.Fatalf("nested envelopes = %d, want %d", len(env.Tools), len(tools))
	}
	for i, nested := range env.Tools {
		if want := EnvelopeTool(tools[i].Name); nested.Tool != want {
			t.Errorf("nested envelope %d tool = %q, want %q", i, nested.Tool, want)
		}
	}

	changes := env.Tools[4]
	if changes.Tool != "lawdocx-changes" || len(changes.Files[0].Items) != 4 {
		t.Errorf("changes envelope = %+v", changes)
	}
	if totals.Warning < 4 {
		t.Errorf("totals = %+v, want at least the 4 change warnings", totals)
	}
	if totals.Info < 1 {
		t.Errorf("totals = %+v, want metadata info findings counted", totals)
	}
}

func TestAuditSeverityFilter(t *testing.T) {
	files := []input.Loaded{loadedFixture(t, docxtest.TrackedChanges(), "deal.docx")}

	env, totals := Audit(files, Tools(Options{}), "error")

	if totals.Info != 0 || totals.Warning != 0 {
		t.Errorf("filtered totals = %+v, want only errors to survive", totals)
	}
	for _, nested := range env.Tools {
		for _, file := range nested.Files {
			for _, f := range file.Items {
				if f.Severity != "error" {
					t.Errorf("%s kept severity %q past the filter", nested.Tool, f.Severity)
				}
			}
		}
	}
}

func TestSelectTools(t *testing.T) {
	tools := Tools(Options{})

	only := SelectTools(tools, []string{ToolChanges, ToolMetadata}, nil)
	if got := toolNames(only); !reflect.DeepEqual(got, []string{ToolMetadata, ToolChanges}) {
		t.Errorf("only selection = %v, want registry order preserved", got)
	}

	excluded := SelectTools(tools, nil, []string{ToolMetadata})
	if len(excluded) != len(tools)-1 {
		t.Errorf("exclude kept %d tools, want %d", len(excluded), len(tools)-1)
	}
	for _, tool := range excluded {
		if tool.Name == ToolMetadata {
			t.Error("excluded tool still present")
		}
	}

	if got := SelectTools(tools, []string{ToolChanges}, []string{ToolChanges}); len(got) != 0 {
		t.Errorf("only+exclude of the same tool = %v, want empty", got)
	}
}
