package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sqlflow/internal/progress"
)

// Store is the SQLite-backed progress repository.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "progress.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_progress (
			user_id         TEXT PRIMARY KEY,
			progress_json   TEXT NOT NULL,
			updated_at_unix INTEGER NOT NULL
		);`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, userID string) (json.RawMessage, error) {
	var doc string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT progress_json FROM user_progress WHERE user_id = ?`,
		userID,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, progress.ErrNoProgress
		}
		return nil, err
	}
	return json.RawMessage(doc), nil
}

func (s *Store) Put(ctx context.Context, userID string, doc json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(doc) {
		return nil, errors.New("progress document is not valid JSON")
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO user_progress (user_id, progress_json, updated_at_unix) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			progress_json = excluded.progress_json,
			updated_at_unix = excluded.updated_at_unix`,
		userID,
		string(doc),
		time.Now().UTC().UnixNano(),
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
