package notice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Allocator generates process and sub-entity identifiers. It holds no
// state beyond its configuration and reads no clock of its own; the caller
// supplies the instant a process id is minted at.
type Allocator struct {
	// Prefix identifies the issuing platform, e.g. "ocds-t1s2t5".
	Prefix string
}

func NewAllocator(prefix string) *Allocator {
	return &Allocator{Prefix: prefix}
}

// NewProcessID concatenates the platform prefix, the country code and the
// millisecond clock. Uniqueness is best-effort under concurrent issuance;
// two calls within the same millisecond for the same country collide.
func (a *Allocator) NewProcessID(country string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", a.Prefix, country, now.UnixMilli())
}

// NewEntityID returns a time-ordered unique token for lot and item ids, so
// natural creation order is recoverable from the id.
func (a *Allocator) NewEntityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back rather
		// than surface an error every caller would have to thread through.
		return uuid.NewString()
	}
	return id.String()
}

// NewToken mints the per-record access token.
func (a *Allocator) NewToken() string {
	return uuid.NewString()
}
