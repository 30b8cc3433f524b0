package sched

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTicksAtPeriod(t *testing.T) {
	var ticks atomic.Int64
	s := New(20*time.Millisecond, func() { ticks.Add(1) })

	s.Start()
	defer s.Stop()
	time.Sleep(110 * time.Millisecond)

	got := ticks.Load()
	if got < 3 || got > 7 {
		t.Errorf("expected roughly 5 ticks over 110ms at 20ms period, got %d", got)
	}
}

func TestDoubleStartSingleSchedule(t *testing.T) {
	var ticks atomic.Int64
	s := New(30*time.Millisecond, func() { ticks.Add(1) })

	s.Start()
	s.Start()
	defer s.Stop()
	time.Sleep(100 * time.Millisecond)

	// Two live schedules would roughly double the tick count.
	got := ticks.Load()
	if got > 4 {
		t.Errorf("double Start produced %d ticks in 100ms at 30ms period; duplicate schedule suspected", got)
	}
	if got == 0 {
		t.Error("expected at least one tick")
	}
}

func TestStopIdempotent(t *testing.T) {
	s := New(10*time.Millisecond, func() {})
	s.Start()
	s.Stop()
	s.Stop() // must not panic

	if s.Running() {
		t.Error("expected stopped state")
	}
}

func TestStopBeforeStart(t *testing.T) {
	s := New(10*time.Millisecond, func() {})
	s.Stop() // must be a no-op
	if s.Running() {
		t.Error("expected stopped state")
	}
}

func TestStopCancelsTicks(t *testing.T) {
	var ticks atomic.Int64
	s := New(15*time.Millisecond, func() { ticks.Add(1) })

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	at := ticks.Load()
	time.Sleep(60 * time.Millisecond)
	if ticks.Load() != at {
		t.Errorf("ticks continued after Stop: %d -> %d", at, ticks.Load())
	}
}

func TestRestartAfterStop(t *testing.T) {
	var ticks atomic.Int64
	s := New(15*time.Millisecond, func() { ticks.Add(1) })

	s.Start()
	s.Stop()
	s.Start()
	defer s.Stop()
	time.Sleep(50 * time.Millisecond)

	if ticks.Load() == 0 {
		t.Error("expected ticks after restart")
	}
}

func TestDefaultPeriod(t *testing.T) {
	s := New(0, func() {})
	if s.period != DefaultPeriod {
		t.Errorf("expected default period %v, got %v", DefaultPeriod, s.period)
	}
}
