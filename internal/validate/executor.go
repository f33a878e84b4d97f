package validate

import (
	"context"
	"database/sql"
)

// Row maps column names to scalar values for one result row.
type Row map[string]any

// ResultSet is the output of one statement. Neither row order nor column
// order within a row carries meaning for equivalence checks.
type ResultSet []Row

// QueryError wraps a guard or driver failure for a single statement. Invalid
// SQL from learners is an expected outcome, not a system fault, so Error
// returns the bare underlying message for display next to their query.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

// Execute screens query through the guard and runs it as a single statement,
// returning the resulting rows. Every execution path is guarded; there is no
// unguarded entry point.
func Execute(ctx context.Context, db *sql.DB, query string) (ResultSet, error) {
	rows, _, err := executeColumns(ctx, db, query)
	return rows, err
}

func executeColumns(ctx context.Context, db *sql.DB, query string) (ResultSet, []string, error) {
	safe, err := Screen(query)
	if err != nil {
		return nil, nil, &QueryError{Err: err}
	}

	rows, err := db.QueryContext(ctx, safe)
	if err != nil {
		return nil, nil, &QueryError{Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, &QueryError{Err: err}
	}

	out := ResultSet{}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for idx := range values {
			pointers[idx] = &values[idx]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, &QueryError{Err: err}
		}

		row := make(Row, len(columns))
		for idx, name := range columns {
			value := values[idx]
			if blob, ok := value.([]byte); ok {
				value = string(blob)
			}
			row[name] = value
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, &QueryError{Err: err}
	}

	return out, columns, nil
}
