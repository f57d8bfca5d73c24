package workout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ayoisaiah/rep/internal/models"
)

type fakeRecorder struct {
	err  error
	logs []models.WorkoutLog
}

func (f *fakeRecorder) RecordSet(
	_ context.Context,
	l models.WorkoutLog,
) (models.WorkoutLog, error) {
	if f.err != nil {
		return models.WorkoutLog{}, f.err
	}

	l.ID = fmt.Sprintf("log-%d", len(f.logs)+1)
	l.CreatedAt = time.Now()

	f.logs = append(f.logs, l)

	return l, nil
}

func testRoutine() models.Routine {
	return models.Routine{
		ID:   "routine-1",
		Name: "Push Day",
		Exercises: []models.Exercise{
			{
				ID:   "ex-a",
				Name: "Bench Press",
				Sets: "2",
				Reps: []string{"10", "8"},
			},
			{
				ID:   "ex-b",
				Name: "Overhead Press",
				Sets: "1",
				Reps: []string{"12"},
			},
		},
	}
}

func newTestEngine(t *testing.T, rec Recorder) *Engine {
	t.Helper()

	e, err := NewEngine(testRoutine(), rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return e
}

func completeSet(t *testing.T, e *Engine) {
	t.Helper()

	if err := e.CompleteSet(context.Background()); err != nil {
		t.Fatalf("unexpected error completing set: %v", err)
	}
}

func TestNewEngineRequiresExercises(t *testing.T) {
	_, err := NewEngine(models.Routine{Name: "Empty"}, &fakeRecorder{})
	if !errors.Is(err, errNoExercises) {
		t.Fatalf("expected errNoExercises, got: %v", err)
	}
}

func TestCompleteSetProgression(t *testing.T) {
	rec := &fakeRecorder{}
	e := newTestEngine(t, rec)

	// first set of the first exercise: stay on the exercise
	completeSet(t, e)

	if e.CurrentIndex() != 0 {
		t.Fatalf("expected to stay on exercise 0, got: %d", e.CurrentIndex())
	}

	if got := e.CompletedSets("ex-a"); got != 1 {
		t.Fatalf("expected 1 completed set, got: %d", got)
	}

	// last set of the first exercise: advance
	completeSet(t, e)

	if e.CurrentIndex() != 1 {
		t.Fatalf("expected to advance to exercise 1, got: %d", e.CurrentIndex())
	}

	if e.State() != StateInProgress {
		t.Fatalf("expected session in progress, got: %s", e.State())
	}

	// last set of the last exercise: complete the session
	completeSet(t, e)

	if e.State() != StateCompleted {
		t.Fatalf("expected completed session, got: %s", e.State())
	}

	if len(rec.logs) != 3 {
		t.Fatalf("expected 3 persisted logs, got: %d", len(rec.logs))
	}

	err := e.CompleteSet(context.Background())
	if !errors.Is(err, errAlreadyCompleted) {
		t.Fatalf("expected errAlreadyCompleted, got: %v", err)
	}
}

func TestCompleteSetRejectedForFinishedExercise(t *testing.T) {
	e := newTestEngine(t, &fakeRecorder{})

	completeSet(t, e)
	completeSet(t, e)

	e.NavigatePrevious()

	err := e.CompleteSet(context.Background())
	if !errors.Is(err, errExerciseDone) {
		t.Fatalf("expected errExerciseDone, got: %v", err)
	}
}

func TestCompleteSetPersistenceFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("row store unavailable")}
	e := newTestEngine(t, rec)

	err := e.CompleteSet(context.Background())
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if got := e.CompletedSets("ex-a"); got != 0 {
		t.Fatalf("expected no completed sets after failure, got: %d", got)
	}

	if e.CurrentIndex() != 0 {
		t.Fatalf("expected no advancement after failure, got: %d", e.CurrentIndex())
	}

	if len(e.Logs()) != 0 {
		t.Fatalf("expected no session logs after failure, got: %d", len(e.Logs()))
	}
}

func TestBufferDefaults(t *testing.T) {
	e := newTestEngine(t, &fakeRecorder{})

	if got := e.Buffer().Reps; got != "10" {
		t.Fatalf("expected initial reps target 10, got: %q", got)
	}

	e.SetBuffer("52.5", "10")

	completeSet(t, e)

	buf := e.Buffer()

	// weight carries forward within an exercise, reps track the next
	// set's target
	if buf.Weight != "52.5" {
		t.Fatalf("expected weight to carry forward, got: %q", buf.Weight)
	}

	if buf.Reps != "8" {
		t.Fatalf("expected reps target 8 for set 2, got: %q", buf.Reps)
	}

	completeSet(t, e)

	buf = e.Buffer()

	// weight resets on the first set of a new exercise
	if buf.Weight != "" {
		t.Fatalf("expected weight cleared on new exercise, got: %q", buf.Weight)
	}

	if buf.Reps != "12" {
		t.Fatalf("expected reps target 12, got: %q", buf.Reps)
	}
}

func TestCompleteSetInputValidation(t *testing.T) {
	e := newTestEngine(t, &fakeRecorder{})

	e.SetBuffer("heavy", "10")

	err := e.CompleteSet(context.Background())
	if !errors.Is(err, errInvalidWeight) {
		t.Fatalf("expected errInvalidWeight, got: %v", err)
	}

	e.SetBuffer("50", "a few")

	err = e.CompleteSet(context.Background())
	if !errors.Is(err, errInvalidReps) {
		t.Fatalf("expected errInvalidReps, got: %v", err)
	}

	// empty inputs default to zero
	e.SetBuffer("", "")

	completeSet(t, e)

	logs := e.Logs()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got: %d", len(logs))
	}

	if logs[0].Weight != 0 || logs[0].Reps != 0 {
		t.Fatalf(
			"expected zero weight and reps, got: %f and %d",
			logs[0].Weight,
			logs[0].Reps,
		)
	}
}

func TestNavigationClamped(t *testing.T) {
	e := newTestEngine(t, &fakeRecorder{})

	e.NavigatePrevious()

	if e.CurrentIndex() != 0 {
		t.Fatalf("expected index 0, got: %d", e.CurrentIndex())
	}

	e.NavigateNext()
	e.NavigateNext()

	if e.CurrentIndex() != 1 {
		t.Fatalf("expected index clamped to 1, got: %d", e.CurrentIndex())
	}
}

func TestFinishRequiresAllSets(t *testing.T) {
	e := newTestEngine(t, &fakeRecorder{})

	err := e.Finish()
	if !errors.Is(err, errIncompleteSets) {
		t.Fatalf("expected errIncompleteSets, got: %v", err)
	}

	completeSet(t, e)
	completeSet(t, e)
	completeSet(t, e)

	if err := e.Finish(); err != nil {
		t.Fatalf("expected finish to succeed, got: %v", err)
	}
}

func TestProgress(t *testing.T) {
	e := newTestEngine(t, &fakeRecorder{})

	if got := e.Progress(); got != 0 {
		t.Fatalf("expected zero progress, got: %f", got)
	}

	completeSet(t, e)

	want := 1.0 / 3.0
	if got := e.Progress(); got != want {
		t.Fatalf("expected progress %f, got: %f", want, got)
	}
}
