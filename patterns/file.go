package patterns

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is a pattern override file: any list left empty falls back to the
// built-in defaults for that tool.
type Set struct {
	Boilerplate []string `yaml:"boilerplate"`
	Todos       []string `yaml:"todos"`
	Brackets    []string `yaml:"brackets"`
}

// LoadFile reads a YAML pattern file. Unknown keys are rejected so a typo
// ("todo:" for "todos:") fails loudly instead of silently scanning with
// defaults.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("reading pattern file: %w", err)
	}
	return parseSet(data, path)
}

func parseSet(data []byte, path string) (Set, error) {
	var set Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parsing pattern file %s: %w", path, err)
	}

	for _, group := range [][]string{set.Boilerplate, set.Todos, set.Brackets} {
		if _, err := Compile(group); err != nil {
			return Set{}, fmt.Errorf("pattern file %s: %w", path, err)
		}
	}
	return set, nil
}
