package domain_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
)

// manualScheduler fires ticks only when the test asks for it.
type manualScheduler struct {
	mu      sync.Mutex
	active  map[int]func()
	armed   []func()
	periods []time.Duration
	nextID  int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{active: map[int]func(){}}
}

func (s *manualScheduler) Every(period time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.active[id] = fn
	s.armed = append(s.armed, fn)
	s.periods = append(s.periods, period)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.active, id)
	}
}

// Fire runs every active timer once.
func (s *manualScheduler) Fire() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.active))
	for _, fn := range s.active {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *manualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}

// Armed returns the callback of the i-th timer ever armed, stopped or not.
func (s *manualScheduler) Armed(i int) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.armed[i]
}

func (s *manualScheduler) LastPeriod() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.periods[len(s.periods)-1]
}

func TestTickerScheduler_EveryAndStop(t *testing.T) {
	var ticks atomic.Int32

	stop := domain.TickerScheduler{}.Every(5*time.Millisecond, func() { ticks.Add(1) })

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)

	stop()
	stop()

	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, ticks.Load(), after+1)
}
