// Package profile stores per-user preference records behind a narrow
// read/write interface so the backing store can be swapped without touching
// the planning pipeline.
package profile

import (
	"context"
	"encoding/json"
)

// Store keys opaque JSON profiles by user id. Get returns (nil, nil) for an
// unknown user.
type Store interface {
	Get(ctx context.Context, userID string) (json.RawMessage, error)
	Put(ctx context.Context, userID string, profile json.RawMessage) error
}
