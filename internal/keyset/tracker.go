// Package keyset tracks value map keys while an entry list is being encoded.
package keyset

import (
	"fmt"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/internal/hash"
)

// Tracker detects repeated value map keys.
//
// Keys are indexed by their xxHash64. Distinct keys sharing a hash are kept in
// the same bucket and compared by content, so a hash collision is never
// reported as a duplicate.
type Tracker struct {
	buckets      map[uint64][]string
	hashKey      func(string) uint64
	count        int
	hasCollision bool
}

// NewTracker creates a tracker sized for about n keys.
func NewTracker(n int) *Tracker {
	return &Tracker{buckets: make(map[uint64][]string, n), hashKey: hash.Key}
}

// Track records key.
//
// Returns errs.ErrDuplicateKey if key was already tracked.
func (t *Tracker) Track(key string) error {
	h := t.hashKey(key)
	bucket := t.buckets[h]
	for _, existing := range bucket {
		if existing == key {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
		}
	}
	if len(bucket) > 0 {
		t.hasCollision = true
	}

	t.buckets[h] = append(bucket, key)
	t.count++

	return nil
}

// HasCollision reports whether two distinct keys hashed to the same value.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked keys, keeping the map's capacity.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.count = 0
	t.hasCollision = false
}
