package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("championship:1", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DoesNotRemember(t *testing.T) {
	var g SingleFlight
	calls := 0

	for range 3 {
		v, err, shared := g.Do("k", func() (any, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
		require.False(t, shared)
		require.Equal(t, calls, v)
	}
	require.Equal(t, 3, calls)
}

func TestSingleFlight_PanicBecomesError(t *testing.T) {
	var g SingleFlight

	_, err, _ := g.Do("k", func() (any, error) {
		panic("boom")
	})
	require.ErrorContains(t, err, "boom")

	v, err, _ := g.Do("k", func() (any, error) { return "recovered", nil })
	require.NoError(t, err)
	require.Equal(t, "recovered", v)
}
