package notice

import (
	"time"

	"noticeflow/record"
)

// Service is the stage-transition engine. Each operation reads at most one
// predecessor record, computes the successor payload in memory, and writes
// exactly one record at the very end; any precondition failure aborts with
// no write at all.
//
// The service performs no locking: the access token authenticates the
// caller, not the record version. Two equally-authorized callers writing
// the same (processID, stage) race at the store and the last writer wins.
type Service struct {
	store record.Store
	alloc *Allocator
	now   func() time.Time
}

func NewService(store record.Store, alloc *Allocator) *Service {
	return &Service{
		store: store,
		alloc: alloc,
		now:   time.Now,
	}
}

// Result is what every successful transition returns to the caller.
type Result struct {
	ProcessID string
	Stage     Stage
	Token     string
	Tender    Tender
}
