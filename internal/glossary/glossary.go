// Package glossary serves the baseball term dictionary: a fixed table
// of terms with substring search, category filtering and a beginner
// mode that hides everything above entry level.
package glossary

import "strings"

// Difficulty grades a term for the beginner-mode filter.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Term is one dictionary record.
type Term struct {
	ID         string     `json:"id"`
	Term       string     `json:"term"`
	Category   string     `json:"category"`
	Definition string     `json:"definition"`
	Example    string     `json:"example,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
}

// Filter returns the terms matching all given criteria: a query that
// must appear in the term or its definition (case-insensitive), an
// optional exact category, and a beginner switch restricting results
// to beginner-level terms.  Order follows the fixed table.
func Filter(query, category string, beginnerOnly bool) []Term {
	query = strings.ToLower(query)
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Term), query) &&
			!strings.Contains(strings.ToLower(t.Definition), query) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		if beginnerOnly && t.Difficulty != Beginner {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Categories lists the distinct categories in first-appearance order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range terms {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
