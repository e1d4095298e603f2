// Package report renders finding envelopes as Markdown or HTML for human
// review, complementing the JSON stream the tools emit for machines.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/model"
)

// Markdown renders an envelope as a Markdown document. Output is
// deterministic for a given envelope: sections follow file order, findings
// follow their list order, and detail keys are sorted.
func Markdown(env model.Envelope) []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s report\n\n", env.Tool)
	fmt.Fprintf(&sb, "- lawdocx version: %s\n", env.LawdocxVersion)
	fmt.Fprintf(&sb, "- generated at: %s\n\n", env.GeneratedAt)

	writeFiles(&sb, env.Files)

	for _, nested := range env.Tools {
		fmt.Fprintf(&sb, "## Tool: %s\n\n", nested.Tool)
		writeFiles(&sb, nested.Files)
	}

	return []byte(sb.String())
}

// HTML renders the envelope's Markdown through goldmark.
func HTML(env model.Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(Markdown(env), &buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFiles(sb *strings.Builder, files []model.FileEntry) {
	for _, entry := range files {
		totals := envelope.Summarize([]model.FileEntry{entry})
		fmt.Fprintf(sb, "### %s\n\n", entry.Path)
		fmt.Fprintf(sb, "sha256 `%s`\n\n", entry.SHA256)
		fmt.Fprintf(sb, "| severity | count |\n|---|---|\n")
		fmt.Fprintf(sb, "| error | %d |\n| warning | %d |\n| info | %d |\n\n",
			totals.Error, totals.Warning, totals.Info)

		if len(entry.Items) == 0 {
			fmt.Fprintf(sb, "No findings.\n\n")
			continue
		}
		for _, item := range entry.Items {
			writeFinding(sb, item)
		}
		sb.WriteString("\n")
	}
}

func writeFinding(sb *strings.Builder, f model.Finding) {
	fmt.Fprintf(sb, "- **%s** (%s) at %s ¶%d", f.Type, f.Severity,
		f.Location.Story, f.Location.ParagraphIndexStart)
	if f.Location.ParagraphIndexEnd != f.Location.ParagraphIndexStart {
		fmt.Fprintf(sb, "-%d", f.Location.ParagraphIndexEnd)
	}
	if target := excerpt(f.Context.Target); target != "" {
		fmt.Fprintf(sb, ": %q", target)
	}
	sb.WriteString("\n")

	keys := make([]string, 0, len(f.Details))
	for key := range f.Details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(sb, "  - %s: %v\n", key, f.Details[key])
	}
}

// excerptLimit keeps finding bullets to one readable line.
const excerptLimit = 120

func excerpt(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) <= excerptLimit {
		return text
	}
	// Back up to a rune boundary so the cut never emits invalid UTF-8.
	cut := excerptLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "…"
}
