// Package history keeps bounded in-memory sample buffers per (zone, metric)
// pair. It is the only stateful component of the scoring pipeline and is
// injected explicitly, never held as a singleton.
package history

import (
	"sync"
	"time"
)

// Sample is one buffered (timestamp, value) observation.
type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type key struct {
	zone   string
	metric string
}

// Store owns one FIFO ring per (zone, metric). Buffers are created lazily on
// first append and evict the oldest sample once capacity is exceeded.
// Appends are serialized; reads return defensive copies so callers never see
// a buffer mid-mutation.
type Store struct {
	mu       sync.RWMutex
	buffers  map[key][]Sample
	capacity int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	return &Store{
		buffers:  make(map[key][]Sample),
		capacity: capacity,
	}
}

func (s *Store) Capacity() int { return s.capacity }

// Append inserts a sample at the tail, evicting the head on overflow.
func (s *Store) Append(zone, metric string, ts time.Time, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{zone, metric}
	buf := s.buffers[k]
	if len(buf) >= s.capacity {
		buf = buf[1:]
	}
	s.buffers[k] = append(buf, Sample{Timestamp: ts, Value: value})
}

// Read returns a chronological snapshot of the buffer, oldest first. The
// snapshot is a copy; mutating it does not affect the store.
func (s *Store) Read(zone, metric string) []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf := s.buffers[key{zone, metric}]
	out := make([]Sample, len(buf))
	copy(out, buf)
	return out
}

// Count reports how many samples are buffered for the pair.
func (s *Store) Count(zone, metric string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buffers[key{zone, metric}])
}

// Reset drops every buffer for a zone. Caller-driven; buffers otherwise live
// for the process lifetime.
func (s *Store) Reset(zone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.buffers {
		if k.zone == zone {
			delete(s.buffers, k)
		}
	}
}
