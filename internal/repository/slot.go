package repository

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Load when no state has been persisted yet.
var ErrSlotEmpty = errors.New("state slot is empty")

// StateSlot is a single named key-value entry holding the JSON-serialized
// full application state. It is read once at startup and written after every
// mutation; there is no schema version field and no migration logic.
type StateSlot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}
