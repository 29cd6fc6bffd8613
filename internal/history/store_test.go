package history

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLazyBuffers(t *testing.T) {
	s := NewStore(24)

	assert.Zero(t, s.Count("A", "chlorine"))
	assert.Empty(t, s.Read("A", "chlorine"))

	s.Append("A", "chlorine", time.Now(), 1.0)
	assert.Equal(t, 1, s.Count("A", "chlorine"))
	assert.Zero(t, s.Count("A", "pH"))
	assert.Zero(t, s.Count("B", "chlorine"))
}

func TestStoreFIFOEviction(t *testing.T) {
	const capacity = 5
	s := NewStore(capacity)

	base := time.Now()
	for i := 0; i < capacity+1; i++ {
		s.Append("A", "flow", base.Add(time.Duration(i)*time.Hour), float64(i))
	}

	require.Equal(t, capacity, s.Count("A", "flow"))

	got := s.Read("A", "flow")
	require.Len(t, got, capacity)
	for i, sample := range got {
		// Oldest entry evicted; the rest keep chronological order.
		assert.Equal(t, float64(i+1), sample.Value)
	}
}

func TestStoreReadReturnsCopy(t *testing.T) {
	s := NewStore(4)
	s.Append("A", "pressure", time.Now(), 4.0)

	snapshot := s.Read("A", "pressure")
	snapshot[0].Value = -1

	assert.Equal(t, 4.0, s.Read("A", "pressure")[0].Value)
}

func TestStoreReset(t *testing.T) {
	s := NewStore(4)
	s.Append("A", "flow", time.Now(), 1)
	s.Append("A", "pH", time.Now(), 7)
	s.Append("B", "flow", time.Now(), 2)

	s.Reset("A")

	assert.Zero(t, s.Count("A", "flow"))
	assert.Zero(t, s.Count("A", "pH"))
	assert.Equal(t, 1, s.Count("B", "flow"))
}

func TestStoreConcurrentAppends(t *testing.T) {
	s := NewStore(1000)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Append("A", "turbidity", time.Now(), float64(i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, s.Count("A", "turbidity"))
}
