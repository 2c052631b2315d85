package util

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// TimestampID returns a monotonic millisecond timestamp string, the ID scheme
// for posters and orders. Consecutive calls within the same millisecond are
// bumped forward so IDs stay unique and ordered.
func TimestampID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now

	return strconv.FormatInt(now, 10)
}
