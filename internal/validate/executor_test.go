package validate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestExecuteEmptyResultEncodesAsArray(t *testing.T) {
	dir := newTestDataDir(t)
	db, err := OpenLessonDB(dir, "1", true)
	if err != nil {
		t.Fatalf("OpenLessonDB failed: %v", err)
	}
	defer db.Close()

	rows, err := Execute(context.Background(), db, "SELECT id FROM users WHERE 1=2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected non-nil empty result set, got %+v", rows)
	}

	encoded, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("marshal result set: %v", err)
	}
	if string(encoded) != "[]" {
		t.Fatalf("empty result set should encode as [], got %s", encoded)
	}
}

func TestExecuteDriverErrorIsQueryError(t *testing.T) {
	dir := newTestDataDir(t)
	db, err := OpenLessonDB(dir, "1", true)
	if err != nil {
		t.Fatalf("OpenLessonDB failed: %v", err)
	}
	defer db.Close()

	_, err = Execute(context.Background(), db, "SELECT id FROM no_such_table")
	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if queryErr.Error() == "" {
		t.Fatalf("QueryError should carry the driver message")
	}
}

func TestExecuteIsAlwaysGuarded(t *testing.T) {
	dir := newTestDataDir(t)
	db, err := OpenLessonDB(dir, "1", true)
	if err != nil {
		t.Fatalf("OpenLessonDB failed: %v", err)
	}
	defer db.Close()

	_, err = Execute(context.Background(), db, "DELETE FROM users")
	var forbidden *ForbiddenOperationError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected guard rejection, got %v", err)
	}
	if forbidden.Keyword != "delete" {
		t.Fatalf("keyword = %q, want delete", forbidden.Keyword)
	}

	// The guard ran before the driver: the table is untouched.
	rows, err := Execute(context.Background(), db, "SELECT id FROM users")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows after rejected delete, got %d", len(rows))
	}
}

func TestOpenLessonDBMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenLessonDB(dir, "7", true)
	var notFound *DatabaseNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected DatabaseNotFoundError, got %v", err)
	}
	if err.Error() != "Database not found: lesson_7.db" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestOpenLessonDBReadOnlyRejectsWrites(t *testing.T) {
	dir := newTestDataDir(t)
	db, err := OpenLessonDB(dir, "1", true)
	if err != nil {
		t.Fatalf("OpenLessonDB failed: %v", err)
	}
	defer db.Close()

	// Bypass the guard on purpose: the read-only mode is the second layer of
	// defense.
	if _, err := db.Exec(`INSERT INTO users (id, name) VALUES (9, 'Mallory')`); err == nil {
		t.Fatalf("expected write on a read-only handle to fail")
	}
}
