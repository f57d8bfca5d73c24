package workout

import "testing"

func TestRestTimerCountdown(t *testing.T) {
	timer := NewRestTimer(3)

	if timer.Active() {
		t.Fatal("expected a fresh timer to be inactive")
	}

	timer.Start()

	if !timer.Active() {
		t.Fatal("expected a started timer to be active")
	}

	if timer.Tick() {
		t.Fatal("expected no expiry after 1 of 3 seconds")
	}

	if timer.Tick() {
		t.Fatal("expected no expiry after 2 of 3 seconds")
	}

	if !timer.Tick() {
		t.Fatal("expected expiry after 3 of 3 seconds")
	}

	if timer.Active() {
		t.Fatal("expected an expired timer to be inactive")
	}

	// the countdown resets for the next rest
	if timer.Remaining() != 3 {
		t.Fatalf("expected remaining reset to 3, got: %d", timer.Remaining())
	}
}

func TestRestTimerSkip(t *testing.T) {
	timer := NewRestTimer(90)

	timer.Start()
	timer.Skip()

	if timer.Active() {
		t.Fatal("expected a skipped timer to be inactive")
	}

	if timer.Tick() {
		t.Fatal("expected ticking an inactive timer to be a no-op")
	}
}

func TestRestTimerDefaultDuration(t *testing.T) {
	timer := NewRestTimer(0)

	if timer.Remaining() != DefaultRestSeconds {
		t.Fatalf(
			"expected the %d second default, got: %d",
			DefaultRestSeconds,
			timer.Remaining(),
		)
	}
}
