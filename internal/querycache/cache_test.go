package querycache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return New(store, ttl), store
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Resource: "games"}, "games"},
		{Key{Resource: "games", ID: "42"}, "games/42"},
		{Key{Resource: "games", ID: "42", Sub: "statistics"}, "games/42/statistics"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.key.String())
	}
}

func TestMatchesPrefix_NoPartialSegmentMatch(t *testing.T) {
	require.True(t, matchesPrefix("games/42", "games/42"))
	require.True(t, matchesPrefix("games/42/statistics", "games/42"))
	require.True(t, matchesPrefix("games/42", "games"))
	require.False(t, matchesPrefix("games/42", "games/4"))
	require.False(t, matchesPrefix("gamesx", "games"))
}

func TestFetch_CachesValue(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	key := Key{Resource: "games", ID: "1"}

	var calls atomic.Int32
	fetcher := func(context.Context) (string, error) {
		calls.Add(1)
		return "brass", nil
	}

	v, err := Fetch(ctx, c, key, fetcher)
	require.NoError(t, err)
	require.Equal(t, "brass", v)

	v, err = Fetch(ctx, c, key, fetcher)
	require.NoError(t, err)
	require.Equal(t, "brass", v)
	require.Equal(t, int32(1), calls.Load())
}

func TestFetch_CoalescesConcurrentRequests(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	key := Key{Resource: "players"}

	var calls atomic.Int32
	release := make(chan struct{})
	fetcher := func(context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"alice", "bob"}, nil
	}

	const n = 10
	var wg sync.WaitGroup
	results := make([][]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Fetch(ctx, c, key, fetcher)
		}(i)
	}

	// Let every goroutine reach the flight before releasing the fetcher.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load(), "concurrent same-key fetches must run the fetcher once")
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, []string{"alice", "bob"}, results[i])
	}
}

func TestFetch_CancelledCallerDoesNotPoisonFlight(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	key := Key{Resource: "games", ID: "9"}

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := func(context.Context) (string, error) {
		calls.Add(1)
		close(started)
		<-release
		return "wingspan", nil
	}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := Fetch(leaderCtx, c, key, fetcher)
		leaderErr <- err
	}()
	<-started

	// A second caller with a live context joins the in-flight fetch.
	followerVal := make(chan string, 1)
	followerErr := make(chan error, 1)
	go func() {
		v, err := Fetch(context.Background(), c, key, fetcher)
		followerVal <- v
		followerErr <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancelLeader()

	// The leader stops waiting with its own cancellation.
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	// The flight keeps running and the follower gets the real value.
	close(release)
	require.NoError(t, <-followerErr)
	require.Equal(t, "wingspan", <-followerVal)
	require.Equal(t, int32(1), calls.Load())
}

func TestInvalidate_SubtreeForcesRefetch(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	var calls atomic.Int32
	counted := func(v string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			calls.Add(1)
			return v, nil
		}
	}

	keyGame := Key{Resource: "games", ID: "42"}
	keyStats := Key{Resource: "games", ID: "42", Sub: "statistics"}
	keyOther := Key{Resource: "games", ID: "7"}

	_, _ = Fetch(ctx, c, keyGame, counted("g42"))
	_, _ = Fetch(ctx, c, keyStats, counted("s42"))
	_, _ = Fetch(ctx, c, keyOther, counted("g7"))
	require.Equal(t, int32(3), calls.Load())

	require.NoError(t, c.Invalidate(ctx, Key{Resource: "games", ID: "42"}))

	// Everything under games/42 refetches; games/7 stays cached.
	_, _ = Fetch(ctx, c, keyGame, counted("g42"))
	_, _ = Fetch(ctx, c, keyStats, counted("s42"))
	_, _ = Fetch(ctx, c, keyOther, counted("g7"))
	require.Equal(t, int32(5), calls.Load())
}

func TestFetch_ErrorIsNotCached(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	key := Key{Resource: "locations"}

	var calls atomic.Int32
	failing := func(context.Context) (string, error) {
		calls.Add(1)
		return "", context.DeadlineExceeded
	}

	_, err := Fetch(ctx, c, key, failing)
	require.Error(t, err)

	ok := func(context.Context) (string, error) {
		calls.Add(1)
		return "home", nil
	}
	v, err := Fetch(ctx, c, key, ok)
	require.NoError(t, err)
	require.Equal(t, "home", v)
	require.Equal(t, int32(2), calls.Load())
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	c, _ := newTestCache(t, 30*time.Millisecond)
	ctx := context.Background()
	key := Key{Resource: "settings"}

	var calls atomic.Int32
	fetcher := func(context.Context) (int, error) {
		calls.Add(1)
		return 1, nil
	}

	_, _ = Fetch(ctx, c, key, fetcher)
	time.Sleep(60 * time.Millisecond)
	_, _ = Fetch(ctx, c, key, fetcher)
	require.Equal(t, int32(2), calls.Load())
}

func TestMemoryStore_Janitor(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), 10*time.Millisecond))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), time.Minute))
	store.StartJanitor(ctx, 20*time.Millisecond)

	require.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 10*time.Millisecond)
}
