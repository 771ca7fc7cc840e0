package dataset

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Store holds the current Dataset behind an atomic pointer. Reloads swap
// the pointer wholesale, so in-flight readers always see a complete table.
type Store struct {
	current atomic.Pointer[Dataset]
}

func NewStore(ds *Dataset) *Store {
	s := &Store{}
	s.current.Store(ds)
	return s
}

// Current returns the dataset being served. Never nil after NewStore.
func (s *Store) Current() *Dataset {
	return s.current.Load()
}

// Swap publishes a fully built replacement dataset.
func (s *Store) Swap(ds *Dataset) {
	s.current.Store(ds)
}

// StartRefresher rebuilds the dataset every ttl and swaps it in. A failed
// rebuild is logged and the previous dataset keeps serving. Returns
// immediately when ttl is zero.
func (s *Store) StartRefresher(ctx context.Context, ttl time.Duration, rebuild func(context.Context) (*Dataset, error)) {
	if ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ds, err := rebuild(ctx)
				if err != nil {
					log.Printf("Warning: dataset reload failed, keeping previous: %v", err)
					continue
				}
				s.Swap(ds)
				log.Printf("Dataset reloaded: %d rows", ds.Len())
			}
		}
	}()
}
