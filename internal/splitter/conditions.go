// Package splitter implements the streaming engine that cuts a SQL dump
// into per-object units. It scans input lines one at a time, counts
// occurrences of configurable keyword phrases ("conditions"), and emits a
// named unit each time the configured number of hits is reached. Matching is
// purely textual; the package does not parse or validate SQL.
package splitter

import "strings"

// DefaultConditions are the DDL phrases used when the caller supplies no
// condition set of its own. Matching is case-insensitive, so the mixed
// casing here is cosmetic; it is kept as-is because conditions are echoed
// back verbatim in reports.
var DefaultConditions = []string{
	"DROP TABLE",
	"CREATE TABLE IF NOT EXISTS",
	"create or replace TABLE",
	"CREATE OR REPLACE FUNCTION",
	"create or replace view",
	"CREATE OR REPLACE PROCEDURE",
}

// Category classifies a condition by the kind of database object its
// statement refers to. The category selects the name-extraction rule applied
// to lines matching that condition.
type Category int

const (
	// CategoryOther marks conditions with no extraction rule.
	CategoryOther Category = iota
	CategoryFunction
	CategoryView
	CategoryTable
	CategoryProcedure
)

// condition is a trigger phrase with its uppercase form and category
// precomputed at engine construction.
type condition struct {
	raw      string
	upper    string
	category Category
}

// categorize derives the extraction category from the condition text. The
// checks run in a fixed order: FUNCTION wins over TABLE so that a phrase
// like "CREATE OR REPLACE FUNCTION" is never treated as a table condition.
func categorize(s string) Category {
	u := strings.ToUpper(s)
	switch {
	case strings.Contains(u, "FUNCTION"):
		return CategoryFunction
	case strings.Contains(u, "VIEW"):
		return CategoryView
	case strings.Contains(u, "TABLE"):
		return CategoryTable
	case strings.Contains(u, "PROCEDURE"):
		return CategoryProcedure
	default:
		return CategoryOther
	}
}

// compileConditions precomputes the uppercase form and category of each
// condition, preserving the declared order. Order matters for name
// extraction: the first matching condition wins.
func compileConditions(raw []string) []condition {
	conds := make([]condition, 0, len(raw))
	for _, r := range raw {
		conds = append(conds, condition{
			raw:      r,
			upper:    strings.ToUpper(r),
			category: categorize(r),
		})
	}
	return conds
}

// matchesAny reports whether the line contains at least one condition as a
// substring, compared case-insensitively. The caller passes the uppercased
// line so it is computed once per line.
func matchesAny(upperLine string, conds []condition) bool {
	for _, c := range conds {
		if strings.Contains(upperLine, c.upper) {
			return true
		}
	}
	return false
}
