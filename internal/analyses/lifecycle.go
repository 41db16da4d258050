package analyses

import "sync"

// State names one phase of the request lifecycle.
type State string

const (
	StateIdle               State = "idle"
	StateAwaitingCredential State = "awaiting_credential"
	StateTesting            State = "testing"
	StateAnalyzing          State = "analyzing"
	StateSuccess            State = "success"
	StateError              State = "error"
)

// Snapshot is a point-in-time view of the lifecycle for the status endpoint.
type Snapshot struct {
	State    State
	Analysis *Analysis
	Err      error
}

// lifecycle serializes credential probes and analysis runs: at most one of
// {testing, analyzing} may be in flight, and a held result or error survives
// until the next begin or reset.
type lifecycle struct {
	mu       sync.Mutex
	state    State
	analysis *Analysis
	lastErr  error
}

func newLifecycle() *lifecycle {
	return &lifecycle{state: StateIdle}
}

// begin claims the in-flight slot for testing or analyzing. It fails with
// ErrBusy if another run holds the slot.
func (l *lifecycle) begin(next State) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateTesting || l.state == StateAnalyzing {
		return ErrBusy
	}
	l.state = next
	l.analysis = nil
	l.lastErr = nil
	return nil
}

// succeed transitions analyzing -> success holding the result.
func (l *lifecycle) succeed(a *Analysis) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateSuccess
	l.analysis = a
	l.lastErr = nil
}

// fail transitions the in-flight run to the given terminal state.
func (l *lifecycle) fail(err error, next State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = next
	l.analysis = nil
	l.lastErr = err
}

// settle ends a credential probe: back to idle on success, awaiting
// credential otherwise. Re-submission is required either way.
func (l *lifecycle) settle(valid bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if valid {
		l.state = StateIdle
	} else {
		l.state = StateAwaitingCredential
	}
	l.analysis = nil
	l.lastErr = nil
}

// awaitCredential marks that an analysis was attempted without a usable
// credential. No-op while a run is in flight.
func (l *lifecycle) awaitCredential() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateTesting || l.state == StateAnalyzing {
		return
	}
	l.state = StateAwaitingCredential
	l.analysis = nil
	l.lastErr = nil
}

// reset returns to idle, discarding any held result or error. No-op while a
// run is in flight.
func (l *lifecycle) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateTesting || l.state == StateAnalyzing {
		return
	}
	l.state = StateIdle
	l.analysis = nil
	l.lastErr = nil
}

func (l *lifecycle) snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{State: l.state, Analysis: l.analysis, Err: l.lastErr}
}
