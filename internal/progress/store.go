package progress

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNoProgress = errors.New("no progress recorded")

// Store persists one progress document per user. The document is opaque to
// the backend: the client owns its shape and replaces it wholesale on save.
type Store interface {
	Get(ctx context.Context, userID string) (json.RawMessage, error)
	Put(ctx context.Context, userID string, doc json.RawMessage) (json.RawMessage, error)
}
