package floating

import (
	"sync"
	"time"
)

// Clock creates tickers. The scheduler takes one so tests can drive settle
// and poll ticks by hand.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock is the wall clock.
type RealClock struct{}

// NewTicker wraps time.NewTicker.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// MockClock is a controllable Clock for testing.
// Its tickers only fire when Tick is called.
type MockClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*mockTicker
}

// NewMockClock creates a mock clock starting at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// NewTicker returns a ticker driven by Tick.
func (c *MockClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &mockTicker{
		clock:    c,
		interval: d,
		ch:       make(chan time.Time),
		stopped:  make(chan struct{}),
	}
	c.tickers = append(c.tickers, t)
	return t
}

// Tick advances the clock and delivers one tick to every live ticker.
// It blocks until each ticker's reader has taken the tick or the ticker stops.
func (c *MockClock) Tick() {
	c.mu.Lock()
	tickers := append([]*mockTicker(nil), c.tickers...)
	var step time.Duration
	for _, t := range tickers {
		step = max(step, t.interval)
	}
	c.now = c.now.Add(step)
	now := c.now
	c.mu.Unlock()

	for _, t := range tickers {
		select {
		case t.ch <- now:
		case <-t.stopped:
		}
	}
}

// Tickers returns the number of tickers that have not been stopped.
func (c *MockClock) Tickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

// Now returns the mock time.
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) remove(t *mockTicker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.tickers {
		if it == t {
			c.tickers = append(c.tickers[:i], c.tickers[i+1:]...)
			return
		}
	}
}

type mockTicker struct {
	clock    *MockClock
	interval time.Duration
	ch       chan time.Time
	stopped  chan struct{}
	once     sync.Once
}

func (t *mockTicker) C() <-chan time.Time { return t.ch }

func (t *mockTicker) Stop() {
	t.once.Do(func() {
		close(t.stopped)
		t.clock.remove(t)
	})
}
