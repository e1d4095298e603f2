package extract

import (
	"io"

	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/input"
	"github.com/lawdesk/lawdocx/model"
)

// Stream executes one tool over the inputs and writes envelope JSON lines to
// w, returning severity totals for everything written. With merge set, all
// file entries share a single envelope; otherwise each input yields its own
// envelope line as soon as the file is processed, so a long batch produces
// output incrementally.
func Stream(w io.Writer, run Runner, files []input.Loaded, merge bool) (model.Totals, error) {
	var totals model.Totals
	if merge {
		env := run(files)
		totals.Add(envelope.Summarize(env.Files))
		return totals, envelope.WriteJSONLine(w, env)
	}

	// One timestamp per run, not per line.
	generatedAt := envelope.Timestamp()
	for _, file := range files {
		env := run([]input.Loaded{file})
		env.GeneratedAt = generatedAt
		totals.Add(envelope.Summarize(env.Files))
		if err := envelope.WriteJSONLine(w, env); err != nil {
			return totals, err
		}
	}
	return totals, nil
}

// StreamFiltered is Stream with a minimum-severity filter applied to every
// envelope before it is written or counted.
func StreamFiltered(w io.Writer, run Runner, files []input.Loaded, merge bool, severity string) (model.Totals, error) {
	filtered := func(fs []input.Loaded) model.Envelope {
		env := run(fs)
		env.Files = envelope.FilterFilesBySeverity(env.Files, severity)
		return env
	}
	return Stream(w, filtered, files, merge)
}
