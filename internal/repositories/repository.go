// Package repositories implements the in-memory mock persistence stores.
//
// Each store simulates a remote CRUD backend: operations sleep a random
// latency before touching the collection, return deep snapshots so caller
// mutation cannot corrupt stored records, and fail with the not-found
// sentinels from the models package. Once issued, an operation always
// resolves; the simulated latency deliberately ignores context cancellation.
package repositories

import (
	"math/rand"
	"sync"
	"time"

	"github.com/apper-canvas/skillbites-light-omni/internal/config"
)

// storeDelay produces the simulated remote latency for a store
type storeDelay struct {
	min time.Duration
	max time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func newStoreDelay(cfg config.StoreConfig) *storeDelay {
	return &storeDelay{
		min: cfg.LatencyMin,
		max: cfg.LatencyMax,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// sleep blocks for a uniformly random duration in [min, max]
func (d *storeDelay) sleep() time.Duration {
	if d.max <= 0 {
		return 0
	}
	d.mu.Lock()
	delay := d.min
	if span := d.max - d.min; span > 0 {
		delay += time.Duration(d.rnd.Int63n(int64(span) + 1))
	}
	d.mu.Unlock()
	time.Sleep(delay)
	return delay
}

// nextID returns max(lastID, highest existing id) + 1, so an identifier that
// has ever been live is never handed out again, even after deletion.
func nextID(lastID int, existing []int) int {
	next := lastID
	for _, id := range existing {
		if id > next {
			next = id
		}
	}
	return next + 1
}
