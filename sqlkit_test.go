package sqlkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ritamzico/sqlkit/internal/token"
)

// representativeRoundTripStatements covers SELECT, INSERT, UPDATE, DELETE,
// CREATE TABLE and CREATE INDEX (MERGE and ALTER TABLE are not included),
// chosen to exercise CTEs, window functions, DML RETURNING, and DDL in the
// same sweep.
var representativeRoundTripStatements = []string{
	`SELECT a, b FROM t WHERE a = 1 AND b = 'x' ORDER BY a DESC LIMIT 10`,
	`WITH a AS (SELECT 1 AS x), b AS (SELECT x + 1 AS y FROM a) SELECT * FROM a JOIN b ON TRUE`,
	`SELECT id, RANK() OVER (PARTITION BY dept ORDER BY salary DESC) AS r FROM employees`,
	`SELECT name, COUNT(*) FILTER (WHERE active) FROM users GROUP BY name`,
	`SELECT CASE WHEN a > 0 THEN 'pos' WHEN a < 0 THEN 'neg' ELSE 'zero' END FROM t`,
	`SELECT * FROM t WHERE name ILIKE '%foo%'`,
	`INSERT INTO t (a, b) VALUES (1, 2), (3, 4) RETURNING a, b`,
	`UPDATE t SET a = 1, b = 2 WHERE c = 3 RETURNING *`,
	`DELETE FROM t WHERE id = 1 RETURNING id`,
	`CREATE TABLE t (id INT NOT NULL, name TEXT, PRIMARY KEY (id))`,
	`CREATE UNIQUE INDEX idx_t_name ON t (name)`,
}

// TestFormat_RoundTripPreservesStructure is this module's round-trip
// property test: parse(format(parse(S), default)) must equal parse(S) under
// structural equality. Token positions necessarily differ between the two
// parses (the formatted text has different offsets/columns than S), so the
// comparison ignores token.Position and compares everything else the AST
// carries.
func TestFormat_RoundTripPreservesStructure(t *testing.T) {
	opts := DefaultFormatOptions()
	ignorePosition := cmpopts.IgnoreTypes(token.Position{})

	for _, sql := range representativeRoundTripStatements {
		original, err := Parse(sql)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", sql, err)
		}
		rendered, err := Format(original, opts)
		if err != nil {
			t.Fatalf("Format(%q) failed: %v", sql, err)
		}

		reparsed, err := Parse(rendered)
		if err != nil {
			t.Fatalf("reparsing formatted output of %q failed: %v\noutput: %s", sql, err, rendered)
		}

		if diff := cmp.Diff(original, reparsed, ignorePosition); diff != "" {
			t.Errorf("round trip changed structure for %q (-original +reparsed):\nrendered: %s\n%s", sql, rendered, diff)
		}
	}
}
