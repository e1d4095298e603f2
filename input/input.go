// Package input resolves command-line file arguments (paths, glob patterns,
// and the stdin marker "-") into a stable, de-duplicated list of sources.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoInputs reports that argument resolution produced no sources.
var ErrNoInputs = errors.New("input: no input files provided")

// Source is one resolved input: a file identified by absolute path, or
// standard input.
type Source struct {
	Path    string
	IsStdin bool
}

// DisplayName returns the name used in envelope file entries.
func (s Source) DisplayName() string {
	if s.IsStdin {
		return "stdin"
	}
	return s.Path
}

// Read returns the source's full content. Stdin sources read from the given
// reader so tests and the audit composite can substitute buffers.
func (s Source) Read(stdin io.Reader) ([]byte, error) {
	if s.IsStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return data, nil
}

// Loaded pairs a source with its already-read content, letting the audit
// composite buffer each input once and hand the same bytes to every tool.
type Loaded struct {
	Source Source
	Data   []byte
}

// Resolve expands CLI arguments into sources. "-" names stdin and appears at
// most once; every other argument is a glob pattern (a plain path matches
// itself) that must match at least one file. Matches are de-duplicated by
// absolute path and the final list is sorted by path, stdin first.
func Resolve(args []string) ([]Source, error) {
	var sources []Source
	seen := make(map[string]bool)
	haveStdin := false

	for _, arg := range args {
		if arg == "-" {
			if haveStdin {
				continue
			}
			haveStdin = true
			sources = append(sources, Source{Path: "-", IsStdin: true})
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files matched pattern: %s", arg)
		}

		for _, match := range matches {
			absolute, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", match, err)
			}
			if seen[absolute] {
				continue
			}
			seen[absolute] = true
			sources = append(sources, Source{Path: absolute})
		}
	}

	if len(sources) == 0 {
		return nil, ErrNoInputs
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}
