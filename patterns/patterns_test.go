package patterns

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsCompile(t *testing.T) {
	for _, group := range [][]string{Boilerplate(), Todos()} {
		if _, err := Compile(group); err != nil {
			t.Errorf("default pattern failed to compile: %v", err)
		}
	}
}

func TestBoilerplateMatches(t *testing.T) {
	compiled, err := Compile(Boilerplate())
	if err != nil {
		t.Fatal(err)
	}

	match := func(text string) bool {
		for _, re := range compiled {
			if re.MatchString(text) {
				return true
			}
		}
		return false
	}

	positives := []string{
		"DRAFT for discussion only",
		"Privileged and Confidential",
		"Page 3 of 12",
		"© 2024 Smith & Jones LLP",
		"[Date]",
		"Not for distribution",
	}
	for _, text := range positives {
		if !match(text) {
			t.Errorf("no boilerplate pattern matched %q", text)
		}
	}

	if match("The parties agree as follows") {
		t.Error("plain contract text matched a boilerplate pattern")
	}
}

func TestTodoMatches(t *testing.T) {
	compiled, err := Compile(Todos())
	if err != nil {
		t.Fatal(err)
	}

	match := func(text string) string {
		for _, re := range compiled {
			if m := re.FindString(text); m != "" {
				return m
			}
		}
		return ""
	}

	if got := match("TODO: confirm the notice period"); got != "TODO" {
		t.Errorf("match = %q, want TODO", got)
	}
	if got := match("[insert date]"); got != "[insert date]" {
		t.Errorf("match = %q, want the bracketed placeholder", got)
	}
	// Word boundaries keep TODO from firing inside larger words.
	if got := match("GRANDTODOS remain"); got != "" {
		t.Errorf("match = %q, want no match", got)
	}
}

func TestCompileDedupes(t *testing.T) {
	compiled, err := Compile([]string{`a+`, `b`, `a+`})
	if err != nil {
		t.Fatal(err)
	}
	if len(compiled) != 2 {
		t.Fatalf("got %d patterns, want 2", len(compiled))
	}
	if compiled[0].String() != `a+` || compiled[1].String() != `b` {
		t.Errorf("order = %q, %q; want a+, b", compiled[0], compiled[1])
	}
}

func TestCompileInvalid(t *testing.T) {
	if _, err := Compile([]string{`(`}); err == nil {
		t.Fatal("Compile() error = nil, want syntax error")
	}
}

func TestCompileDotAll(t *testing.T) {
	compiled, err := CompileDotAll([]string{`\[.*\]`})
	if err != nil {
		t.Fatal(err)
	}
	if !compiled[0].MatchString("[spans\ntwo lines]") {
		t.Error("DotAll pattern did not match across newline")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := `boilerplate:
  - "(?i)strictly private"
todos:
  - "\\bACTION\\b"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(set.Boilerplate) != 1 || set.Boilerplate[0] != "(?i)strictly private" {
		t.Errorf("Boilerplate = %v", set.Boilerplate)
	}
	if len(set.Todos) != 1 || set.Todos[0] != `\bACTION\b` {
		t.Errorf("Todos = %v", set.Todos)
	}
	if set.Brackets != nil {
		t.Errorf("Brackets = %v, want nil", set.Brackets)
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte("todo:\n  - x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() error = nil, want unknown-field error")
	}
	if !strings.Contains(err.Error(), "todo") {
		t.Errorf("error = %v, want mention of the unknown key", err)
	}
}

func TestLoadFileInvalidPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte("brackets:\n  - '('\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile() error = nil, want compile error")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadFile() error = nil, want read error")
	}
}
