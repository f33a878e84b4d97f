package validate

import (
	"errors"
	"testing"
)

func TestScreenRejectsBannedKeywords(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		keyword string
	}{
		{"insert statement", "INSERT INTO users VALUES (1)", "insert"},
		{"delete statement", "delete from users", "delete"},
		{"mixed case drop", "SeLeCt 1; DrOp TABLE users", "drop"},
		{"attach database", "ATTACH DATABASE 'x.db' AS x", "attach"},
		{"keyword inside identifier", "SELECT * FROM update_log", "update"},
		{"keyword inside comment", "SELECT 1 -- then drop everything", "drop"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Screen(tc.query)
			var forbidden *ForbiddenOperationError
			if !errors.As(err, &forbidden) {
				t.Fatalf("Screen(%q) error = %v, want ForbiddenOperationError", tc.query, err)
			}
			if forbidden.Keyword != tc.keyword {
				t.Fatalf("keyword = %q, want %q", forbidden.Keyword, tc.keyword)
			}
		})
	}
}

func TestScreenDenylistOrderDeterminesKeyword(t *testing.T) {
	// "created_at" also matches "create", but "update" comes first in the
	// denylist and wins.
	_, err := Screen("SELECT update_log, created_at FROM audit")
	var forbidden *ForbiddenOperationError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected ForbiddenOperationError, got %v", err)
	}
	if forbidden.Keyword != "update" {
		t.Fatalf("keyword = %q, want %q", forbidden.Keyword, "update")
	}
}

func TestScreenJoinBudget(t *testing.T) {
	threeJoins := `SELECT * FROM a
		JOIN b ON a.id = b.a_id
		JOIN c ON b.id = c.b_id
		join d ON c.id = d.c_id`
	if _, err := Screen(threeJoins); err != nil {
		t.Fatalf("three joins should pass the guard, got %v", err)
	}

	fourJoins := threeJoins + " JOIN e ON d.id = e.d_id"
	if _, err := Screen(fourJoins); !errors.Is(err, ErrTooManyJoins) {
		t.Fatalf("four joins error = %v, want ErrTooManyJoins", err)
	}
}

func TestScreenCountsJoinSubstrings(t *testing.T) {
	// The budget counts substrings, not parsed JOIN clauses.
	if _, err := Screen("SELECT 'joinjoinjoinjoin'"); !errors.Is(err, ErrTooManyJoins) {
		t.Fatalf("expected ErrTooManyJoins for four join substrings, got %v", err)
	}
}

func TestScreenReturnsQueryUnmodified(t *testing.T) {
	query := "  SELECT id,\n\tname FROM users  "
	got, err := Screen(query)
	if err != nil {
		t.Fatalf("Screen returned error: %v", err)
	}
	if got != query {
		t.Fatalf("Screen rewrote the query: %q", got)
	}
}
