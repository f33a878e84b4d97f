package validate

import (
	"errors"
	"strings"
)

// bannedKeywords is the denylist screened against every query before it
// executes. The check is a plain substring match over the lowered query text,
// not a tokenizer, so identifiers or comments containing a banned word are
// rejected too. That over-blocking is accepted policy for a learning sandbox.
var bannedKeywords = []string{"insert", "update", "delete", "drop", "alter", "create", "attach"}

// maxJoins caps how many times "join" may appear in one query.
const maxJoins = 3

// ErrTooManyJoins carries the exact message learners see in their verdict.
var ErrTooManyJoins = errors.New("Too many JOINs")

// ForbiddenOperationError reports the first denylisted keyword found in a
// query.
type ForbiddenOperationError struct {
	Keyword string
}

func (e *ForbiddenOperationError) Error() string {
	return "Operation not allowed: " + e.Keyword
}

// Screen checks query against the denylist and the join budget and returns it
// unmodified when it passes. Screen performs no rewriting and has no side
// effects.
func Screen(query string) (string, error) {
	lowered := strings.ToLower(query)
	for _, word := range bannedKeywords {
		if strings.Contains(lowered, word) {
			return "", &ForbiddenOperationError{Keyword: word}
		}
	}

	if strings.Count(lowered, "join") > maxJoins {
		return "", ErrTooManyJoins
	}

	return query, nil
}
