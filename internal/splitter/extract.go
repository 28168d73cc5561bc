package splitter

import (
	"regexp"
	"strings"
)

// Extraction patterns, one per category. Each captures the token
// immediately following the statement keyword: up to the first "(" or
// whitespace for functions and procedures, up to the first ";" or
// whitespace for views and tables.
var (
	functionNamePattern  = regexp.MustCompile(`(?i)CREATE OR REPLACE FUNCTION\s+([^\s(]+)`)
	viewNamePattern      = regexp.MustCompile(`(?i)CREATE OR REPLACE VIEW\s+([^\s;]+)`)
	tableNamePattern     = regexp.MustCompile(`(?i)(?:CREATE TABLE|DROP TABLE)\s+([^\s;]+)`)
	procedureNamePattern = regexp.MustCompile(`(?i)CREATE OR REPLACE PROCEDURE\s+([^\s(]+)`)
)

// extractName derives an object name from a line known to contain at least
// one condition. Conditions are tried in their declared order and the first
// one whose category rule captures a token wins, even when a later condition
// was the one that triggered the hit. Conditions without a rule
// (CategoryOther) are skipped. Returns false when no rule captured anything,
// letting the caller keep the previous or default name.
func extractName(line, upperLine string, conds []condition) (string, bool) {
	for _, c := range conds {
		if !strings.Contains(upperLine, c.upper) {
			continue
		}

		var pattern *regexp.Regexp
		switch c.category {
		case CategoryFunction:
			pattern = functionNamePattern
		case CategoryView:
			pattern = viewNamePattern
		case CategoryTable:
			pattern = tableNamePattern
		case CategoryProcedure:
			pattern = procedureNamePattern
		default:
			continue
		}

		if m := pattern.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
