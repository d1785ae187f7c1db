package services

import (
	"sync"
	"time"

	"forecast-inference-service/internal/core/domain"
)

// ServerState is the serving loop state.
type ServerState string

const (
	StateStarting ServerState = "starting"
	StateReady    ServerState = "ready"
	StateDraining ServerState = "draining"
	StateStopped  ServerState = "stopped"
)

// Lifecycle owns the Starting -> Ready -> Draining -> Stopped transitions and
// tracks in-flight requests so shutdown can drain them. Requests are only
// admitted in Ready; everything before and after is rejected.
type Lifecycle struct {
	mu       sync.Mutex
	state    ServerState
	inflight int
	idle     chan struct{} // closed when draining and inflight hits zero
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateStarting, idle: make(chan struct{})}
}

func (l *Lifecycle) State() ServerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// MarkReady transitions Starting -> Ready. The model must already be loaded;
// callers enforce the load-before-serve ordering by calling this only after a
// successful Load.
func (l *Lifecycle) MarkReady() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStarting {
		l.state = StateReady
	}
}

// BeginRequest admits one request and returns the completion callback, or
// rejects when the server is not Ready.
func (l *Lifecycle) BeginRequest() (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case StateReady:
	case StateDraining:
		return nil, domain.ErrServerDraining
	default:
		return nil, domain.ErrServerStopped
	}

	l.inflight++
	return l.endRequest, nil
}

func (l *Lifecycle) endRequest() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inflight--
	if l.inflight == 0 && l.state == StateDraining {
		close(l.idle)
	}
}

// Drain stops admitting requests and waits up to grace for in-flight ones to
// finish. It reports whether the server drained cleanly within the grace
// period.
func (l *Lifecycle) Drain(grace time.Duration) bool {
	l.mu.Lock()
	if l.state != StateReady && l.state != StateStarting {
		l.mu.Unlock()
		return true
	}
	l.state = StateDraining
	if l.inflight == 0 {
		close(l.idle)
	}
	l.mu.Unlock()

	select {
	case <-l.idle:
		return true
	case <-time.After(grace):
		return false
	}
}

// Stop is terminal.
func (l *Lifecycle) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateStopped
}
