package record

import "time"

// ProcessRecord is the unit of persistence: one versioned payload for a
// (process, stage) pair. Records are superseded by whole-row rewrites,
// never patched in place; earlier stages stay immutable once a later stage
// has been derived from them.
type ProcessRecord struct {
	ProcessID string
	Stage     string
	Token     string
	Owner     string
	CreatedAt time.Time
	Payload   []byte
}
