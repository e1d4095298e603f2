package extract

import (
	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/input"
	"github.com/lawdesk/lawdocx/model"
)

// Audit runs every given tool across the same inputs and nests the per-tool
// envelopes under one outer envelope. Each tool's file entries are filtered
// to the minimum severity before nesting; the returned totals count what
// survived filtering. The outer envelope carries no file entries of its own.
func Audit(files []input.Loaded, tools []NamedRunner, severity string) (model.Envelope, model.Totals) {
	outer := envelope.New(EnvelopeTool(ToolAudit), []model.FileEntry{}, "")

	var totals model.Totals
	for _, tool := range tools {
		env := tool.Run(files)
		env.Files = envelope.FilterFilesBySeverity(env.Files, severity)
		totals.Add(envelope.Summarize(env.Files))
		outer.Tools = append(outer.Tools, env)
	}

	return outer, totals
}

// SelectTools filters a tool list by name. A non-empty only list keeps just
// those tools, registry order preserved; exclude then removes tools by name.
func SelectTools(tools []NamedRunner, only, exclude []string) []NamedRunner {
	keep := func(name string) bool {
		if len(only) > 0 {
			found := false
			for _, o := range only {
				if o == name {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		for _, e := range exclude {
			if e == name {
				return false
			}
		}
		return true
	}

	selected := make([]NamedRunner, 0, len(tools))
	for _, tool := range tools {
		if keep(tool.Name) {
			selected = append(selected, tool)
		}
	}
	return selected
}
