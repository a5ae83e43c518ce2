package service

import (
	"fmt"
	"sync"
	"time"

	"catboard/internal/dto"
	"catboard/internal/logger"
)

// ClockService drives the analog clock view. Start spins up a periodic
// update of the published state; Stop is the teardown contract called
// when navigating away, after which no further state writes happen.
type ClockService struct {
	now  func() time.Time
	tick time.Duration

	// lifecycle serializes Start and Stop so a restart can never
	// orphan a running updater.
	lifecycle sync.Mutex

	mu      sync.Mutex
	state   dto.ClockResponse
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewClockService creates a stopped clock updating every tick once
// started. A 5s tick is the default compromise between precision and
// render cost.
func NewClockService(tick time.Duration) *ClockService {
	if tick <= 0 {
		tick = 5 * time.Second
	}
	return &ClockService{
		now:  time.Now,
		tick: tick,
	}
}

// ComputeClockState derives the hand rotation angles and the digital
// readout from a wall-clock instant:
// seconds move 6 degrees each, minutes 6 degrees plus a 0.1 degree
// drift per second, hours 30 degrees (mod 12) plus 0.5 per minute.
func ComputeClockState(t time.Time) dto.ClockResponse {
	hours, minutes, seconds := t.Hour(), t.Minute(), t.Second()

	return dto.ClockResponse{
		SecondDeg: float64(seconds) * 6,
		MinuteDeg: float64(minutes)*6 + float64(seconds)*0.1,
		HourDeg:   float64(hours%12)*30 + float64(minutes)*0.5,
		Hours:     fmt.Sprintf("%02d", hours),
		Minutes:   fmt.Sprintf("%02d", minutes),
		Seconds:   fmt.Sprintf("%02d", seconds),
	}
}

// Start begins the periodic update. It updates once immediately. A
// second Start while running restarts the ticker, so there is never
// more than one.
func (c *ClockService) Start() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	c.stopUpdater()

	c.mu.Lock()
	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	stop, done := c.stop, c.done
	c.mu.Unlock()

	c.update()

	go func() {
		defer close(done)
		ticker := time.NewTicker(c.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.update()
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancels the periodic update and waits for the updater to exit,
// so no write can land after Stop returns. Stopping a stopped clock is
// a no-op.
func (c *ClockService) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	if c.stopUpdater() {
		logger.Get().Debug("clock stopped")
	}
}

// stopUpdater tears down the current updater, if any, and waits for it
// to exit. Callers must hold lifecycle.
func (c *ClockService) stopUpdater() bool {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return false
	}
	c.running = false
	stop, done := c.stop, c.done
	c.mu.Unlock()

	close(stop)
	<-done
	return true
}

// Current returns the last published state. When the clock has never
// been started it computes one from the current time without starting
// the updater.
func (c *ClockService) Current() dto.ClockResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Hours == "" {
		state := ComputeClockState(c.now())
		state.Running = c.running
		return state
	}
	return c.state
}

// Running reports whether the updater is active.
func (c *ClockService) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *ClockService) update() {
	state := ComputeClockState(c.now())
	c.mu.Lock()
	state.Running = c.running
	c.state = state
	c.mu.Unlock()
}
