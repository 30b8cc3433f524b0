// Package sched provides the repeating silent-refresh timer.
package sched

import (
	"sync"
	"time"
)

// DefaultPeriod is the silent-refresh interval when none is configured.
const DefaultPeriod = 180 * time.Second

// Scheduler fires a callback on a fixed period. Start while running
// cancels the previous timer first, so two Start calls never produce two
// concurrent schedules; Stop is idempotent and safe in any order with
// Start.
type Scheduler struct {
	mu      sync.Mutex
	period  time.Duration
	tick    func()
	stop    chan struct{}
	running bool
}

func New(period time.Duration, tick func()) *Scheduler {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Scheduler{period: period, tick: tick}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		close(s.stop)
	}
	s.stop = make(chan struct{})
	s.running = true
	go s.loop(s.stop)
}

func (s *Scheduler) loop(stop chan struct{}) {
	t := time.NewTicker(s.period)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.tick()
		}
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	s.running = false
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
