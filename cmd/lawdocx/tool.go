package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lawdesk/lawdocx"
	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/extract"
	"github.com/lawdesk/lawdocx/input"
	"github.com/lawdesk/lawdocx/model"
	"github.com/lawdesk/lawdocx/patterns"
)

// streamingTools emit one envelope line per input file unless -merge is set.
var streamingTools = map[string]bool{
	lawdocx.ToolFootnotes:   true,
	lawdocx.ToolBoilerplate: true,
	lawdocx.ToolMetadata:    true,
}

// toolFlags holds the flag values shared by the extraction commands.
type toolFlags struct {
	output         string
	severity       string
	failOnFindings bool
	merge          bool
	patternExprs   multiFlag
	patternsFile   string
	only           multiFlag
	exclude        multiFlag
}

func newToolFlagSet(name string, stderr io.Writer, audit bool) (*flag.FlagSet, *toolFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var tf toolFlags
	fs.StringVar(&tf.output, "o", "", "write output to FILE instead of stdout")
	fs.StringVar(&tf.output, "output", "", "write output to FILE instead of stdout")
	fs.StringVar(&tf.severity, "severity", "", "drop findings below LEVEL (info|warning|error)")
	fs.BoolVar(&tf.failOnFindings, "fail-on-findings", false, "exit 1 when any finding survives filtering")
	fs.StringVar(&tf.patternsFile, "patterns-file", "", "YAML pattern overrides")
	if audit {
		fs.Var(&tf.only, "only", "run only this tool (repeatable)")
		fs.Var(&tf.exclude, "exclude", "skip this tool (repeatable)")
	} else {
		fs.Var(&tf.patternExprs, "pattern", "override pattern for this tool (repeatable)")
		if streamingTools[name] {
			fs.BoolVar(&tf.merge, "merge", false, "one merged envelope instead of one line per file")
		}
	}
	return fs, &tf
}

// patternSet combines -patterns-file and -pattern into one override set. CLI
// -pattern values replace the file's list for the named tool.
func (tf *toolFlags) patternSet(tool string) (patterns.Set, error) {
	var set patterns.Set
	if tf.patternsFile != "" {
		loaded, err := patterns.LoadFile(tf.patternsFile)
		if err != nil {
			return set, err
		}
		set = loaded
	}
	if len(tf.patternExprs) > 0 {
		switch tool {
		case lawdocx.ToolBoilerplate:
			set.Boilerplate = tf.patternExprs
		case lawdocx.ToolTodos:
			set.Todos = tf.patternExprs
		case lawdocx.ToolBrackets:
			set.Brackets = tf.patternExprs
		default:
			return set, fmt.Errorf("-pattern is not supported by the %s tool", tool)
		}
	}
	return set, nil
}

func (tf *toolFlags) validSeverity() bool {
	return tf.severity == "" || model.ValidSeverity(tf.severity)
}

func runTool(tool string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, tf := newToolFlagSet(tool, stderr, false)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !tf.validSeverity() {
		fmt.Fprintf(stderr, "lawdocx: unknown severity: %s\n", tf.severity)
		return exitUsage
	}

	set, err := tf.patternSet(tool)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitUsage
	}
	opts, err := compileOptions(set)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitUsage
	}
	runner, ok := findRunner(tool, opts)
	if !ok {
		fmt.Fprintf(stderr, "lawdocx: unknown tool: %s\n", tool)
		return exitUsage
	}

	files, err := loadInputs(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}

	out, closeOut, err := openOutput(tf.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}

	merge := tf.merge || !streamingTools[tool]
	totals, err := extract.StreamFiltered(out, runner, files, merge, tf.severity)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}

	if tf.failOnFindings && totals.Sum() > 0 {
		return exitFindings
	}
	return exitOK
}

func runAudit(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, tf := newToolFlagSet("audit", stderr, true)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !tf.validSeverity() {
		fmt.Fprintf(stderr, "lawdocx: unknown severity: %s\n", tf.severity)
		return exitUsage
	}
	set, err := tf.patternSet("")
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitUsage
	}
	for _, tool := range tf.only {
		if !lawdocx.IsTool(tool) {
			fmt.Fprintf(stderr, "lawdocx: unknown tool: %s\n", tool)
			return exitUsage
		}
	}

	opts := []lawdocx.Option{
		lawdocx.WithStdin(stdin),
		lawdocx.WithPatterns(set),
		lawdocx.WithOnly(tf.only...),
		lawdocx.WithExclude(tf.exclude...),
	}
	if tf.severity != "" {
		opts = append(opts, lawdocx.WithSeverity(tf.severity))
	}

	env, totals, err := lawdocx.Audit(fs.Args(), opts...)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}

	out, closeOut, err := openOutput(tf.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}
	err = envelope.WriteJSONLine(out, env)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}

	fmt.Fprintf(stderr, "audit: %d error(s), %d warning(s), %d info\n",
		totals.Error, totals.Warning, totals.Info)

	if tf.failOnFindings && totals.Sum() > 0 {
		return exitFindings
	}
	return exitOK
}

// compileOptions mirrors the facade's pattern handling for the direct
// runner path the streaming tools use.
func compileOptions(set patterns.Set) (extract.Options, error) {
	var opts extract.Options
	var err error
	if len(set.Boilerplate) > 0 {
		if opts.BoilerplatePatterns, err = patterns.Compile(set.Boilerplate); err != nil {
			return opts, err
		}
	}
	if len(set.Todos) > 0 {
		if opts.TodoPatterns, err = patterns.Compile(set.Todos); err != nil {
			return opts, err
		}
	}
	if len(set.Brackets) > 0 {
		if opts.BracketPatterns, err = patterns.CompileDotAll(set.Brackets); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func findRunner(tool string, opts extract.Options) (extract.Runner, bool) {
	for _, r := range extract.Tools(opts) {
		if r.Name == tool {
			return r.Run, true
		}
	}
	return nil, false
}

// loadInputs resolves path arguments and buffers every input.
func loadInputs(args []string, stdin io.Reader) ([]input.Loaded, error) {
	sources, err := input.Resolve(args)
	if err != nil {
		return nil, err
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
