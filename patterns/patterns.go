// Package patterns holds the built-in detection pattern sets and the helpers
// that compile user-supplied overrides.
package patterns

import (
	"fmt"
	"regexp"
)

// boilerplateDefaults match legends, legal footers, page furniture, and
// placeholder artifacts that recur in headers and footers of law-firm drafts.
var boilerplateDefaults = []string{
	// Draft / watermark legends.
	`(?i)drafts?.*?(only|purposes|—|$)`,
	`(?i)for discussion.*?(only|purposes)?`,
	`(?i)confidential.*?(draft|discussion)`,
	`(?i)internal.*?(use|only)`,
	`(?i)privileged.*?(confidential|attorney)`,
	`(?i)attorney.*?(work product|client privilege)`,
	`(?i)not for distribution`,
	`(?i)working copy`,
	`(?i)review copy`,
	`(?i)execution.*?(version|copy).*?(draft|missing)`,
	`(?i)draft.*?execution`,
	`(?i)subject to.*?approval`,

	// Law-firm footers and legends.
	`©?\s*\d{4}\s+[-&'\w\s]+(?:LLP|PC|LLC|P\.A\.?|L\.L\.P\.?)`,
	`Prepared by\s+[-&\w\s]+(?:LLP|PC|Law)`,
	`Confidential\s*[-–—]\s*[-&\w\s]+(?:LLP|LLC|PC)`,
	`©?\s*All Rights Reserved\s*[-&\w\s]+(?:LLP|PC)`,
	`(?i)privileged and confidential`,
	`(?i)attorney[- ]client privilege`,

	// Page numbering artifacts.
	`Page\s+\d+\s+of\s+\d+`,
	`Page\s+\d+\s*/\s*\d+`,
	`\d+\s+of\s+\d+`,
	`‹#›|{#}|<Page>|\{ PAGE \}|\{ NUMPAGES \}`,
	`-\s*\d+\s*-`,
	`(?i)page\s*\d+`,

	// Placeholder dates.
	`\[\s*Date\s*\]`,
	`\[?\s*_{5,}\s*\]?`,
	`As of\s*_{3,}|As of\s*,?\s*\d{4}`,
	`Dated\s*[:–]?\s*_{3,}`,
	`\d{4}\s*-\s*\d{2}\s*-\s*\d{2}\s*Draft`,
	`(?i)as of\s+<date>`,

	// File-path and temporary artifacts.
	`[A-Z]:\\.+\\.docx?`,
	`/Users/.+/`,
	`~\$`,
}

// todoDefaults match TODO-style markers and drafting placeholders left in
// document text.
var todoDefaults = []string{
	`\bTODO\b`,
	`\bFIXME\b`,
	`\bNTD\b`,
	`\bTBD\b`,
	`\bTBC\b`,
	`\bTBA\b`,
	`\bCHECK\b`,
	`\bREVIEW\b`,
	`\bREVISIT\b`,
	`\bCONFIRM\b`,
	`\bVERIFY\b`,
	`\bINSERT\b`,
	`\bDELETE\b`,
	`\bREPLACE\b`,
	`\bREWORD\b`,
	`\bUPDATE\b`,
	`\[\s*\?\s*\]`,
	`\[\s*NTD\s*\]`,
	`\[\s*TODO\s*\]`,
	`\[\s*TBD\s*\]`,
	`\[\s*CHECK\s*\]`,
	`\[\s*REVIEW\s*\]`,
	`\[\s*DISCUSS\s*\]`,
	`\[\s*to be (confirmed|discussed|updated|inserted|deleted|reviewed)\s*\]`,
	`\[\s*client to confirm\s*\]`,
	`\[\s*confirm with client\s*\]`,
	`\[\s*insert (date|amount|name|governing law)\s*\]`,
	`\[\s*delete if not applicable\s*\]`,
}

// Boilerplate returns a copy of the default boilerplate patterns.
func Boilerplate() []string {
	return append([]string(nil), boilerplateDefaults...)
}

// Todos returns a copy of the default TODO patterns.
func Todos() []string {
	return append([]string(nil), todoDefaults...)
}

// Compile compiles patterns in order, dropping duplicates while keeping the
// first occurrence's position.
func Compile(exprs []string) ([]*regexp.Regexp, error) {
	seen := make(map[string]bool, len(exprs))
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		if seen[expr] {
			continue
		}
		seen[expr] = true
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", expr, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// CompileDotAll compiles patterns like Compile but with . matching newlines
// and ^/$ matching line boundaries, for patterns applied to whole story text.
func CompileDotAll(exprs []string) ([]*regexp.Regexp, error) {
	prefixed := make([]string, len(exprs))
	for i, expr := range exprs {
		prefixed[i] = "(?sm)" + expr
	}
	return Compile(prefixed)
}

// MustCompile is Compile for pattern lists known to be valid, such as the
// built-in defaults. It panics on a compile error.
func MustCompile(exprs []string) []*regexp.Regexp {
	compiled, err := Compile(exprs)
	if err != nil {
		panic(err)
	}
	return compiled
}
