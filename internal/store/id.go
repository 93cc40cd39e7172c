package store

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Int64

// NewID builds a caller-supplied primary key from the current timestamp,
// e.g. "badge_1712345678901". A process-local sequence keeps ids unique
// when several are minted within the same millisecond.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d%03d", prefix, time.Now().UnixMilli(), idSeq.Add(1)%1000)
}
