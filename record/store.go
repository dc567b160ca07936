package record

import (
	"context"
	"errors"
)

// ErrNotFound signals that no record exists for the requested key.
var ErrNotFound = errors.New("record: not found")

// Store is keyed persistence for process records. At most one live record
// exists per (processID, stage); Put replaces any previous record for the
// same key. The engine relies on the access token in the record, not on the
// store, to fence unauthorized writers, so Put is a plain upsert.
type Store interface {
	Get(ctx context.Context, processID, stage string) (ProcessRecord, error)
	Put(ctx context.Context, rec ProcessRecord) error
}
