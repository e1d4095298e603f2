package extract

import (
	"fmt"
	"regexp"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/input"
	"github.com/lawdesk/lawdocx/model"
	"github.com/lawdesk/lawdocx/patterns"
)

// Short tool names, as selected on the command line and in the API.
const (
	ToolMetadata    = "metadata"
	ToolBoilerplate = "boilerplate"
	ToolTodos       = "todos"
	ToolFootnotes   = "footnotes"
	ToolChanges     = "changes"
	ToolComments    = "comments"
	ToolHighlights  = "highlights"
	ToolBrackets    = "brackets"
	ToolOutline     = "outline"
	ToolAudit       = "audit"
)

var (
	defaultBoilerplate = patterns.MustCompile(patterns.Boilerplate())
	defaultTodos       = patterns.MustCompile(patterns.Todos())
)

// EnvelopeTool returns the tool identifier recorded in envelopes.
func EnvelopeTool(name string) string { return "lawdocx-" + name }

// Runner executes one tool across the loaded inputs and returns its
// envelope. Runners never fail: per-file problems surface as error findings.
type Runner func(files []input.Loaded) model.Envelope

// NamedRunner pairs a tool's short name with its runner.
type NamedRunner struct {
	Name string
	Run  Runner
}

// Options carries the pattern overrides for the pattern-driven tools. Nil
// boilerplate or TODO patterns select the built-in defaults; nil bracket
// patterns select the balanced-bracket scan.
type Options struct {
	BoilerplatePatterns []*regexp.Regexp
	TodoPatterns        []*regexp.Regexp
	BracketPatterns     []*regexp.Regexp
}

// Tools returns every tool runner in audit execution order.
func Tools(opts Options) []NamedRunner {
	boiler := opts.BoilerplatePatterns
	if boiler == nil {
		boiler = defaultBoilerplate
	}
	todos := opts.TodoPatterns
	if todos == nil {
		todos = defaultTodos
	}
	return []NamedRunner{
		{ToolMetadata, RunMetadata},
		{ToolBoilerplate, BoilerplateRunner(boiler)},
		{ToolTodos, TodosRunner(todos)},
		{ToolFootnotes, RunFootnotes},
		{ToolChanges, RunChanges},
		{ToolComments, RunComments},
		{ToolHighlights, RunHighlights},
		{ToolBrackets, BracketsRunner(opts.BracketPatterns)},
		{ToolOutline, RunOutline},
	}
}

// RunMetadata executes the metadata tool.
func RunMetadata(files []input.Loaded) model.Envelope {
	return runTool(ToolMetadata, files, model.TypeMetadata, "metadata", CollectMetadata)
}

// RunFootnotes executes the footnotes tool.
func RunFootnotes(files []input.Loaded) model.Envelope {
	return runTool(ToolFootnotes, files, model.TypeFootnote, docx.StoryBody, CollectFootnotes)
}

// RunChanges executes the tracked-changes tool.
func RunChanges(files []input.Loaded) model.Envelope {
	return runTool(ToolChanges, files, model.TypeInsertion, docx.StoryBody, CollectChanges)
}

// RunComments executes the comments tool.
func RunComments(files []input.Loaded) model.Envelope {
	return runTool(ToolComments, files, model.TypeComment, "comment", CollectComments)
}

// RunHighlights executes the highlights tool.
func RunHighlights(files []input.Loaded) model.Envelope {
	return runTool(ToolHighlights, files, model.TypeHighlight, docx.StoryBody, CollectHighlights)
}

// RunOutline executes the outline tool.
func RunOutline(files []input.Loaded) model.Envelope {
	return runTool(ToolOutline, files, model.TypeOutline, docx.StoryBody, CollectOutline)
}

// BoilerplateRunner returns the boilerplate tool bound to a pattern set.
func BoilerplateRunner(pats []*regexp.Regexp) Runner {
	return func(files []input.Loaded) model.Envelope {
		return runTool(ToolBoilerplate, files, model.TypeBoilerplate, docx.StoryHeader,
			func(pkg *docx.Package) []model.Finding { return CollectBoilerplate(pkg, pats) })
	}
}

// TodosRunner returns the TODO tool bound to a pattern set.
func TodosRunner(pats []*regexp.Regexp) Runner {
	return func(files []input.Loaded) model.Envelope {
		return runTool(ToolTodos, files, model.TypeTodo, docx.StoryBody,
			func(pkg *docx.Package) []model.Finding { return CollectTodos(pkg, pats) })
	}
}

// BracketsRunner returns the brackets tool. Nil patterns select the
// balanced-bracket scan.
func BracketsRunner(pats []*regexp.Regexp) Runner {
	return func(files []input.Loaded) model.Envelope {
		return runTool(ToolBrackets, files, model.TypeBracket, docx.StoryBody,
			func(pkg *docx.Package) []model.Finding { return CollectBrackets(pkg, pats) })
	}
}

// runTool maps a collector across every input under one envelope.
func runTool(name string, files []input.Loaded, errType, errStory string, collect func(*docx.Package) []model.Finding) model.Envelope {
	entries := make([]model.FileEntry, 0, len(files))
	for _, file := range files {
		entries = append(entries, collectFile(file, errType, errStory, collect))
	}
	return envelope.New(EnvelopeTool(name), entries, "")
}

// collectFile runs one collector over one loaded input. An input that cannot
// be opened as a DOCX package yields exactly one error finding and nothing
// else; the batch carries on.
func collectFile(file input.Loaded, errType, errStory string, collect func(*docx.Package) []model.Finding) model.FileEntry {
	entry := model.FileEntry{
		Path:   file.Source.DisplayName(),
		SHA256: envelope.HashBytes(file.Data),
		Items:  []model.Finding{},
	}

	pkg, err := docx.OpenBytes(file.Data)
	if err != nil {
		entry.Items = append(entry.Items, errorFinding(errType, errStory,
			fmt.Sprintf("Failed to open DOCX: %v", err)))
		return entry
	}
	defer pkg.Close()

	entry.Items = append(entry.Items, collect(pkg)...)
	return entry
}
