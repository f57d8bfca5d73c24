// Package workout operates an active workout session: the progression
// through a routine's exercises and sets, the rest countdown, and the
// terminal screen that drives them.
package workout

import (
	"context"
	"strconv"
	"strings"

	"github.com/ayoisaiah/rep/internal/apperr"
	"github.com/ayoisaiah/rep/internal/models"
)

// State is the lifecycle of a workout session.
type State string

const (
	StateInProgress State = "in progress"
	StateCompleted  State = "completed"
)

var (
	errNoExercises = &apperr.Error{
		Message: "this routine has no exercises to work through",
	}

	errAlreadyCompleted = &apperr.Error{
		Message: "the workout is already complete",
	}

	errExerciseDone = &apperr.Error{
		Message: "all sets for this exercise are already logged",
	}

	errIncompleteSets = &apperr.Error{
		Message: "cannot finish: one or more exercises have unfinished sets",
	}

	errInvalidWeight = &apperr.Error{
		Message: "weight must be a number",
	}

	errInvalidReps = &apperr.Error{
		Message: "reps must be a whole number",
	}
)

// Buffer holds the weight/reps input for the upcoming set. Both are
// free text until a set is completed.
type Buffer struct {
	Weight string
	Reps   string
}

// Engine is the state machine for one workout session. It is
// single-threaded and driven entirely by user-initiated events; the
// session state is discarded when the workout ends, only the
// individual set logs persist.
type Engine struct {
	rec       Recorder
	completed map[string]int
	routine   models.Routine
	logs      []models.WorkoutLog
	buffer    Buffer
	current   int
	state     State
}

// NewEngine starts a session for the given routine.
func NewEngine(r models.Routine, rec Recorder) (*Engine, error) {
	if len(r.Exercises) == 0 {
		return nil, errNoExercises
	}

	e := &Engine{
		routine:   r,
		rec:       rec,
		completed: make(map[string]int),
		state:     StateInProgress,
	}

	e.refreshBuffer()

	return e, nil
}

// Routine returns the routine being worked.
func (e *Engine) Routine() models.Routine {
	return e.routine
}

// State reports whether the session is in progress or completed.
func (e *Engine) State() State {
	return e.state
}

// CurrentIndex is the position of the current exercise.
func (e *Engine) CurrentIndex() int {
	return e.current
}

// CurrentExercise returns the exercise being worked.
func (e *Engine) CurrentExercise() *models.Exercise {
	return &e.routine.Exercises[e.current]
}

// CompletedSets returns the number of sets logged for an exercise in
// this session.
func (e *Engine) CompletedSets(exerciseID string) int {
	return e.completed[exerciseID]
}

// TotalCompletedSets counts all sets logged in this session.
func (e *Engine) TotalCompletedSets() int {
	var total int

	for _, n := range e.completed {
		total += n
	}

	return total
}

// Logs returns the set logs accumulated so far.
func (e *Engine) Logs() []models.WorkoutLog {
	out := make([]models.WorkoutLog, len(e.logs))
	copy(out, e.logs)

	return out
}

// Buffer returns the current weight/reps input.
func (e *Engine) Buffer() Buffer {
	return e.buffer
}

// SetBuffer replaces the weight/reps input.
func (e *Engine) SetBuffer(weight, reps string) {
	e.buffer.Weight = weight
	e.buffer.Reps = reps
}

// UpcomingSetNumber is the 1-based number of the next set for the
// current exercise.
func (e *Engine) UpcomingSetNumber() int {
	return e.completed[e.CurrentExercise().ID] + 1
}

// Progress is the fraction of the routine's target sets logged so
// far, for the overall progress bar.
func (e *Engine) Progress() float64 {
	total := e.routine.TotalSets()
	if total == 0 {
		return 0
	}

	return float64(e.TotalCompletedSets()) / float64(total)
}

// refreshBuffer recomputes the input buffer for the current exercise:
// reps defaults to the target for the upcoming set, and weight is
// cleared only when the upcoming set is the first one, otherwise the
// previous input carries forward.
func (e *Engine) refreshBuffer() {
	upcoming := e.UpcomingSetNumber()

	e.buffer.Reps = e.CurrentExercise().TargetReps(upcoming)

	if upcoming == 1 {
		e.buffer.Weight = ""
	}
}

func (e *Engine) parseBuffer() (weight float64, reps int, err error) {
	w := strings.TrimSpace(e.buffer.Weight)
	if w == "" {
		w = "0"
	}

	weight, err = strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, 0, errInvalidWeight
	}

	r := strings.TrimSpace(e.buffer.Reps)
	if r == "" {
		r = "0"
	}

	reps, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, errInvalidReps
	}

	return weight, reps, nil
}

// CompleteSet logs the current input as the next set of the current
// exercise. The log is persisted first; if that fails, the session
// state is left untouched and the error is surfaced once, with no
// retry. On success the engine advances: stay on the exercise while
// sets remain, move to the next exercise when its last set is done,
// or complete the session after the final set of the final exercise.
func (e *Engine) CompleteSet(ctx context.Context) error {
	if e.state == StateCompleted {
		return errAlreadyCompleted
	}

	ex := e.CurrentExercise()

	setNumber := e.completed[ex.ID] + 1
	if setNumber > ex.TargetSets() {
		return errExerciseDone
	}

	weight, reps, err := e.parseBuffer()
	if err != nil {
		return err
	}

	saved, err := e.rec.RecordSet(ctx, models.WorkoutLog{
		RoutineID:  e.routine.ID,
		ExerciseID: ex.ID,
		Weight:     weight,
		Reps:       reps,
		SetNumber:  setNumber,
	})
	if err != nil {
		return err
	}

	e.completed[ex.ID] = setNumber
	e.logs = append(e.logs, saved)

	if setNumber == ex.TargetSets() {
		if e.current == len(e.routine.Exercises)-1 {
			e.state = StateCompleted
			return nil
		}

		e.current++
	}

	e.refreshBuffer()

	return nil
}

// NavigateNext moves to the next exercise, a no-op at the end of the
// routine. Completed-set counts are untouched.
func (e *Engine) NavigateNext() {
	if e.current >= len(e.routine.Exercises)-1 {
		return
	}

	e.current++
	e.refreshBuffer()
}

// NavigatePrevious moves to the previous exercise, a no-op at the
// start of the routine.
func (e *Engine) NavigatePrevious() {
	if e.current <= 0 {
		return
	}

	e.current--
	e.refreshBuffer()
}

// Finish ends the session early. It is rejected unless every exercise
// has reached its target set count.
func (e *Engine) Finish() error {
	if e.state == StateCompleted {
		return nil
	}

	for i := range e.routine.Exercises {
		ex := &e.routine.Exercises[i]

		if e.completed[ex.ID] < ex.TargetSets() {
			return errIncompleteSets
		}
	}

	e.state = StateCompleted

	return nil
}
