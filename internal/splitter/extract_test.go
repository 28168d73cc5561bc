package splitter

import (
	"strings"
	"testing"
)

func testExtract(t *testing.T, conds []string, line string) (string, bool) {
	t.Helper()
	return extractName(line, strings.ToUpper(line), compileConditions(conds))
}

func TestExtractName_PerCategory(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "function name up to paren",
			line: "CREATE OR REPLACE FUNCTION calc_total(price numeric) RETURNS numeric AS $$",
			want: "calc_total",
		},
		{
			name: "function name up to whitespace",
			line: "CREATE OR REPLACE FUNCTION refresh_stats () RETURNS void",
			want: "refresh_stats",
		},
		{
			name: "view name up to semicolon",
			line: "CREATE OR REPLACE VIEW v_orders;",
			want: "v_orders",
		},
		{
			name: "view name up to whitespace",
			line: "create or replace view v_customers AS SELECT 1",
			want: "v_customers",
		},
		{
			name: "drop table",
			line: "DROP TABLE orders;",
			want: "orders",
		},
		{
			name: "drop table lowercase",
			line: "drop table public.orders cascade;",
			want: "public.orders",
		},
		{
			name: "procedure name up to paren",
			line: "CREATE OR REPLACE PROCEDURE sync_users(IN id int)",
			want: "sync_users",
		},
		{
			// The rule is literal: the token immediately after the keyword,
			// even when that token is part of IF NOT EXISTS.
			name: "create table if not exists captures following token",
			line: "CREATE TABLE IF NOT EXISTS users (id int);",
			want: "IF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testExtract(t, DefaultConditions, tt.line)
			if !ok {
				t.Fatalf("expected a name from %q", tt.line)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractName_NoRuleForOtherCategory(t *testing.T) {
	conds := []string{"ALTER SEQUENCE"}
	if name, ok := testExtract(t, conds, "ALTER SEQUENCE orders_id_seq RESTART;"); ok {
		t.Errorf("expected no name for a rule-less condition, got %q", name)
	}
}

func TestExtractName_FirstConditionWins(t *testing.T) {
	// Both a view and a table condition match; the first condition in
	// declared order decides the rule.
	conds := []string{"create or replace view", "DROP TABLE"}
	line := "CREATE OR REPLACE VIEW v_mix AS SELECT * FROM t; DROP TABLE old_t;"

	name, ok := testExtract(t, conds, line)
	if !ok {
		t.Fatal("expected a name")
	}
	if name != "v_mix" {
		t.Errorf("expected view rule to win, got %q", name)
	}

	// Reversed declaration order flips the outcome.
	name, ok = testExtract(t, []string{"DROP TABLE", "create or replace view"}, line)
	if !ok {
		t.Fatal("expected a name")
	}
	if name != "old_t" {
		t.Errorf("expected table rule to win, got %q", name)
	}
}

func TestExtractName_FallsThroughToNextMatch(t *testing.T) {
	// The first matching condition has no rule; the second one names the
	// line.
	conds := []string{"ALTER SEQUENCE", "DROP TABLE"}
	line := "ALTER SEQUENCE s1; DROP TABLE t1;"

	name, ok := testExtract(t, conds, line)
	if !ok {
		t.Fatal("expected a name from the second condition")
	}
	if name != "t1" {
		t.Errorf("expected 't1', got %q", name)
	}
}

func TestExtractName_RuleMismatchReturnsNoName(t *testing.T) {
	// Condition matches but its extraction pattern does not: a TABLE
	// condition hit on a line with no CREATE/DROP TABLE phrase.
	conds := []string{"TABLE"}
	if name, ok := testExtract(t, conds, "LOCK TABLE orders;"); ok {
		t.Errorf("expected no name, got %q", name)
	}
}
