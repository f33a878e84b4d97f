package validate

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DatabaseNotFoundError reports a missing lesson database file.
type DatabaseNotFoundError struct {
	LessonID string
}

func (e *DatabaseNotFoundError) Error() string {
	return fmt.Sprintf("Database not found: lesson_%s.db", e.LessonID)
}

// OpenLessonDB opens the SQLite file backing lessonID under dataDir. The file
// must already exist; lesson databases are provisioned out of band and never
// created lazily. The caller owns the handle and must close it exactly once.
//
// Validation always opens read-only. The read-write mode exists for content
// tooling; the guard still blocks destructive statements on such handles.
func OpenLessonDB(dataDir, lessonID string, readOnly bool) (*sql.DB, error) {
	path := filepath.Join(dataDir, "lesson_"+lessonID+".db")
	if _, err := os.Stat(path); err != nil {
		return nil, &DatabaseNotFoundError{LessonID: lessonID}
	}

	mode := "rw"
	if readOnly {
		mode = "ro"
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode="+mode)
	if err != nil {
		return nil, err
	}
	return db, nil
}
