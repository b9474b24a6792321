package resilience

import (
	"fmt"
	"sync"
)

// SingleFlight deduplicates concurrent calls for the same key. Nothing is
// remembered once the leading call returns.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg   sync.WaitGroup
	val  any
	err  error
	dups int
}

// Do runs fn once per key among overlapping callers. The bool reports whether
// the result was shared with another caller. A panic in fn is returned as an
// error to every waiter.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}
	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	g.run(c, fn)

	g.mu.Lock()
	delete(g.calls, key)
	shared := c.dups > 0
	g.mu.Unlock()

	return c.val, c.err, shared
}

func (g *SingleFlight) run(c *call, fn func() (any, error)) {
	defer c.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			c.val, c.err = nil, fmt.Errorf("singleflight call panicked: %v", r)
		}
	}()
	c.val, c.err = fn()
}
