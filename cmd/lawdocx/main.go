// Command lawdocx extracts structured findings from DOCX documents and
// prints them as JSON envelopes, renders reports, or serves the extractors
// over HTTP.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lawdesk/lawdocx"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitUsage    = 2
	exitError    = 3
)

const usageText = `usage: lawdocx <command> [flags] [path|glob|-]...

Extraction commands (one JSON envelope on stdout):
  changes      tracked insertions, deletions, and moves
  comments     comment bodies with threading and anchors
  footnotes    footnote/endnote references with resolved note text
  highlights   highlighted runs
  brackets     bracketed placeholders (balanced scan or --pattern)
  todos        TODO-style drafting markers
  boilerplate  header/footer legends and page furniture
  outline      manual/suspicious numbering in body text
  metadata     document properties
  audit        every tool, one nested envelope each

Other commands:
  report       render an envelope (stdin or file) as Markdown or HTML
  info         sniff input files and print format/hash summaries
  serve        run the HTTP extraction service
  version      print the lawdocx version

Common flags: -o FILE, -severity LEVEL, -fail-on-findings,
  -pattern REGEX (repeatable), -patterns-file FILE, -merge,
  audit only: -only TOOL, -exclude TOOL (repeatable).
Inputs are paths, glob patterns, or - for stdin.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version":
		fmt.Fprintln(stdout, lawdocx.Version)
		return exitOK
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK
	case "report":
		return runReport(rest, stdin, stdout, stderr)
	case "info":
		return runInfo(rest, stdout, stderr)
	case "serve":
		return runServe(rest, stderr)
	case "audit":
		return runAudit(rest, stdin, stdout, stderr)
	default:
		if lawdocx.IsTool(cmd) {
			return runTool(cmd, rest, stdin, stdout, stderr)
		}
		fmt.Fprintf(stderr, "lawdocx: unknown command: %s\n\n", cmd)
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}
}

// multiFlag collects repeatable string flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// openOutput returns the writer for -o: stdout for "" or "-", a created file
// otherwise. The returned closer is a no-op for stdout.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, f.Close, nil
}
