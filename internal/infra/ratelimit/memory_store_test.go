package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestMemoryStore_FixedWindow(t *testing.T) {
	clock := &manualClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, err := store.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	// Still inside the window: the counter keeps growing.
	clock.Advance(59 * time.Second)
	count, err := store.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	// The window is anchored at the first hit, not the last one.
	clock.Advance(time.Second)
	count, err = store.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Increment(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_ConcurrentIncrementsAreAtomic(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const workers = 50
	seen := make([]int64, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			count, err := store.Increment(ctx, "shared", time.Minute)
			assert.NoError(t, err)
			seen[i] = count
		}(i)
	}
	wg.Wait()

	// Every caller observed a distinct count.
	unique := make(map[int64]struct{}, workers)
	for _, count := range seen {
		unique[count] = struct{}{}
	}
	assert.Len(t, unique, workers)
}

func TestMemoryStore_Sweep(t *testing.T) {
	clock := &manualClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	ctx := context.Background()

	for i := range 3 {
		_, err := store.Increment(ctx, fmt.Sprintf("short-%d", i), time.Minute)
		require.NoError(t, err)
	}
	_, err := store.Increment(ctx, "long", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Sweep())
	assert.Equal(t, 4, store.Len())

	clock.Advance(time.Minute)
	assert.Equal(t, 3, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Janitor(t *testing.T) {
	clock := &manualClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)

	_, err := store.Increment(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	store.StartJanitor(5 * time.Millisecond)
	store.StartJanitor(5 * time.Millisecond)

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	require.NoError(t, store.StopJanitor(context.Background()))
	require.NoError(t, store.StopJanitor(context.Background()))
}
