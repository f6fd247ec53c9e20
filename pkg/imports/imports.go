// Package imports scans Spearmint source text for import directives without
// running the full lexer/parser pipeline, the way pragma detection works for
// Solidity sources: a regex sweep over raw text, good enough for tooling that
// only needs to know what a file imports, not how to evaluate it.
package imports

import (
	"fmt"
	"regexp"
	"strings"
)

// Directive is one import "name"; statement found in source text.
type Directive struct {
	Raw        string // the full matched statement, including the keyword
	ModuleName string // the quoted name, unescaped of surrounding quotes
}

var importRe = regexp.MustCompile(`import\s+"([^"]*)"\s*;`)

// Detect extracts the first import directive from source. It returns an
// error if no import statement is present.
func Detect(source string) (*Directive, error) {
	loc := importRe.FindStringSubmatchIndex(source)
	if loc == nil {
		return nil, fmt.Errorf("no import directive found")
	}
	return &Directive{
		Raw:        strings.TrimSpace(source[loc[0]:loc[1]]),
		ModuleName: source[loc[2]:loc[3]],
	}, nil
}

// DetectAll extracts every import directive from source, in source order.
// It returns an error only when none are present at all.
func DetectAll(source string) ([]*Directive, error) {
	matches := importRe.FindAllStringSubmatchIndex(source, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no import directives found")
	}

	results := make([]*Directive, 0, len(matches))
	for _, loc := range matches {
		results = append(results, &Directive{
			Raw:        strings.TrimSpace(source[loc[0]:loc[1]]),
			ModuleName: source[loc[2]:loc[3]],
		})
	}
	return results, nil
}

// ModuleNames returns just the module names from DetectAll, preserving order
// and dropping duplicates; it never errors, returning nil on no matches.
func ModuleNames(source string) []string {
	directives, err := DetectAll(source)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(directives))
	var names []string
	for _, d := range directives {
		if seen[d.ModuleName] {
			continue
		}
		seen[d.ModuleName] = true
		names = append(names, d.ModuleName)
	}
	return names
}
