package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/format"
	"github.com/lawdesk/lawdocx/model"
	"github.com/lawdesk/lawdocx/report"
)

// runReport renders an envelope (stdin, or a file argument) as Markdown or,
// with -html, as HTML.
func runReport(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var html bool
	var output string
	fs.BoolVar(&html, "html", false, "render HTML instead of Markdown")
	fs.StringVar(&output, "o", "", "write output to FILE instead of stdout")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "lawdocx: %v\n", err)
			return exitError
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: reading envelope: %v\n", err)
		return exitError
	}
	var env model.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		fmt.Fprintf(stderr, "lawdocx: input is not an envelope: %v\n", err)
		return exitError
	}

	var rendered []byte
	if html {
		rendered, err = report.HTML(env)
		if err != nil {
			fmt.Fprintf(stderr, "lawdocx: %v\n", err)
			return exitError
		}
	} else {
		rendered = report.Markdown(env)
	}

	out, closeOut, err := openOutput(output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}
	_, err = out.Write(rendered)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "lawdocx: %v\n", err)
		return exitError
	}
	return exitOK
}

// runInfo prints one JSON line per input: path, sniffed format, and sha256.
func runInfo(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "lawdocx: info needs at least one path")
		return exitUsage
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "lawdocx: %v\n", err)
			return exitError
		}
		entry := map[string]any{
			"path":   path,
			"format": format.Detect(data).String(),
			"sha256": envelope.HashBytes(data),
			"bytes":  len(data),
		}
		if err := envelope.WriteJSONLine(stdout, entry); err != nil {
			fmt.Fprintf(stderr, "lawdocx: %v\n", err)
			return exitError
		}
	}
	return exitOK
}
