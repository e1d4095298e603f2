// Package lawdocx extracts structured findings from DOCX documents for legal
// review: tracked changes, threaded comments, footnotes and endnotes,
// highlighted text, bracketed placeholders, boilerplate legends, TODO
// markers, outline numbering problems, and document metadata.
//
// Basic usage:
//
//	findings, err := lawdocx.Extract(lawdocx.ToolChanges, "contract.docx")
//	if err != nil {
//	    // handle error
//	}
//
// Running a tool over several inputs produces a versioned envelope:
//
//	env, err := lawdocx.Run(lawdocx.ToolComments, []string{"drafts/*.docx"})
//
// The audit composite runs every tool and nests one envelope per tool:
//
//	env, totals, err := lawdocx.Audit(paths,
//	    lawdocx.WithSeverity("warning"),
//	    lawdocx.WithExclude("metadata"))
//
// For lower-level access the docx and extract packages are also available.
package lawdocx

import (
	"fmt"
	"os"

	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/extract"
	"github.com/lawdesk/lawdocx/input"
	"github.com/lawdesk/lawdocx/model"
)

// Version is the lawdocx release version stamped into envelopes.
const Version = envelope.Version

// Tool names accepted by Run and the audit selection options.
const (
	ToolMetadata    = extract.ToolMetadata
	ToolBoilerplate = extract.ToolBoilerplate
	ToolTodos       = extract.ToolTodos
	ToolFootnotes   = extract.ToolFootnotes
	ToolChanges     = extract.ToolChanges
	ToolComments    = extract.ToolComments
	ToolHighlights  = extract.ToolHighlights
	ToolBrackets    = extract.ToolBrackets
	ToolOutline     = extract.ToolOutline
)

// Tools returns every tool name in audit execution order.
func Tools() []string {
	runners := extract.Tools(extract.Options{})
	names := make([]string, 0, len(runners))
	for _, r := range runners {
		names = append(names, r.Name)
	}
	return names
}

// IsTool reports whether name identifies a known tool.
func IsTool(name string) bool {
	for _, t := range Tools() {
		if t == name {
			return true
		}
	}
	return false
}

// Extract runs one tool on a single file and returns its findings. Problems
// inside the document degrade to error-severity findings; the returned error
// covers only unusable arguments (unknown tool, unreadable path, bad
// patterns).
func Extract(tool, path string, opts ...Option) ([]model.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	env, err := RunBytes(tool, path, data, opts...)
	if err != nil {
		return nil, err
	}
	return env.Files[0].Items, nil
}

// Run executes one tool across paths (plain paths, glob patterns, or "-" for
// stdin) and returns its envelope, severity-filtered when WithSeverity is
// given.
func Run(tool string, paths []string, opts ...Option) (model.Envelope, error) {
	cfg := buildConfig(opts)
	runner, err := lookupRunner(tool, cfg)
	if err != nil {
		return model.Envelope{}, err
	}
	files, err := loadInputs(paths, cfg)
	if err != nil {
		return model.Envelope{}, err
	}
	env := runner(files)
	if cfg.severity != "" {
		env.Files = envelope.FilterFilesBySeverity(env.Files, cfg.severity)
	}
	return env, nil
}

// RunBytes executes one tool on an in-memory document, as the HTTP service
// does. The name labels the file entry in the envelope.
func RunBytes(tool, name string, data []byte, opts ...Option) (model.Envelope, error) {
	cfg := buildConfig(opts)
	runner, err := lookupRunner(tool, cfg)
	if err != nil {
		return model.Envelope{}, err
	}
	files := []input.Loaded{{Source: input.Source{Path: name}, Data: data}}
	env := runner(files)
	if cfg.severity != "" {
		env.Files = envelope.FilterFilesBySeverity(env.Files, cfg.severity)
	}
	return env, nil
}

// Audit runs every selected tool across the same inputs, nesting one
// severity-filtered envelope per tool under the outer audit envelope. Totals
// count the findings that survived filtering.
func Audit(paths []string, opts ...Option) (model.Envelope, model.Totals, error) {
	cfg := buildConfig(opts)
	files, err := loadInputs(paths, cfg)
	if err != nil {
		return model.Envelope{}, model.Totals{}, err
	}
	return auditFiles(files, cfg)
}

// AuditBytes is Audit for a single in-memory document.
func AuditBytes(name string, data []byte, opts ...Option) (model.Envelope, model.Totals, error) {
	cfg := buildConfig(opts)
	files := []input.Loaded{{Source: input.Source{Path: name}, Data: data}}
	return auditFiles(files, cfg)
}

func auditFiles(files []input.Loaded, cfg config) (model.Envelope, model.Totals, error) {
	extractOpts, err := cfg.extractOptions()
	if err != nil {
		return model.Envelope{}, model.Totals{}, err
	}
	tools := extract.SelectTools(extract.Tools(extractOpts), cfg.only, cfg.exclude)
	if len(tools) == 0 {
		return model.Envelope{}, model.Totals{}, fmt.Errorf("no tools selected")
	}
	env, totals := extract.Audit(files, tools, cfg.severity)
	return env, totals, nil
}

// lookupRunner finds a tool's runner with the config's patterns applied.
func lookupRunner(tool string, cfg config) (extract.Runner, error) {
	extractOpts, err := cfg.extractOptions()
	if err != nil {
		return nil, err
	}
	for _, r := range extract.Tools(extractOpts) {
		if r.Name == tool {
			return r.Run, nil
		}
	}
	return nil, fmt.Errorf("unknown tool: %s", tool)
}

// loadInputs resolves path arguments and buffers every input's bytes.
func loadInputs(paths []string, cfg config) ([]input.Loaded, error) {
	sources, err := input.Resolve(paths)
	if err != nil {
		return nil, err
	}
	stdin := cfg.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	loaded := make([]input.Loaded, 0, len(sources))
	for _, src := range sources {
		data, err := src.Read(stdin)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, input.Loaded{Source: src, Data: data})
	}
	return loaded, nil
}
