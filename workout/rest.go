package workout

// DefaultRestSeconds is the rest countdown between sets.
const DefaultRestSeconds = 90

// RestTimer is a simple countdown between sets. It decrements once
// per second while active and has no effect on session transitions.
type RestTimer struct {
	defaultSecs int
	remaining   int
	active      bool
}

// NewRestTimer returns an inactive timer counting down from the given
// duration, falling back to the 90-second default.
func NewRestTimer(seconds int) *RestTimer {
	if seconds <= 0 {
		seconds = DefaultRestSeconds
	}

	return &RestTimer{
		defaultSecs: seconds,
		remaining:   seconds,
	}
}

// Start begins a fresh countdown.
func (t *RestTimer) Start() {
	t.active = true
	t.remaining = t.defaultSecs
}

// Tick advances the countdown by one second. Reaching zero
// deactivates the timer, resets it for next time, and reports true.
func (t *RestTimer) Tick() (expired bool) {
	if !t.active {
		return false
	}

	t.remaining--

	if t.remaining <= 0 {
		t.active = false
		t.remaining = t.defaultSecs

		return true
	}

	return false
}

// Skip deactivates the countdown.
func (t *RestTimer) Skip() {
	t.active = false
}

// Active reports whether a countdown is running.
func (t *RestTimer) Active() bool {
	return t.active
}

// Remaining is the number of seconds left.
func (t *RestTimer) Remaining() int {
	return t.remaining
}
