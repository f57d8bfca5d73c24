// Package models defines the core entities of a workout tracker:
// routines, the exercises they contain, and the set logs recorded
// during workout sessions.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Exercise is a single exercise within a routine. Sets and Reps are
// free-text fields so that partially typed values survive editing;
// Reps holds one target-rep string per set.
type Exercise struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Sets string   `json:"sets"`
	Reps []string `json:"reps"`
}

// TargetSets parses the sets field, returning 0 for anything that is
// not a non-negative integer.
func (e *Exercise) TargetSets() int {
	n, err := strconv.Atoi(strings.TrimSpace(e.Sets))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// SetSets updates the sets field and reconciles the reps slice so its
// length tracks the new set count. Existing targets are preserved,
// new slots are padded with empty strings.
func (e *Exercise) SetSets(sets string) {
	e.Sets = sets

	n := e.TargetSets()

	if len(e.Reps) > n {
		e.Reps = e.Reps[:n]
		return
	}

	for len(e.Reps) < n {
		e.Reps = append(e.Reps, "")
	}
}

// TargetReps returns the rep target for the given 1-based set number,
// falling back to the first target when the index is out of range, or
// "" when no targets exist.
func (e *Exercise) TargetReps(setNumber int) string {
	if len(e.Reps) == 0 {
		return ""
	}

	i := setNumber - 1
	if i < 0 || i >= len(e.Reps) {
		return e.Reps[0]
	}

	return e.Reps[i]
}

// RepSummary condenses the rep targets for display, e.g. "10 Reps" or
// "12, 10, 8 Reps".
func (e *Exercise) RepSummary() string {
	if len(e.Reps) == 0 {
		return "0 Reps"
	}

	allSame := true

	for _, r := range e.Reps {
		if r != e.Reps[0] {
			allSame = false
			break
		}
	}

	if allSame {
		return e.Reps[0] + " Reps"
	}

	return strings.Join(e.Reps, ", ") + " Reps"
}

// Routine is a named collection of exercises. It owns its exercises:
// deleting a routine deletes them and, in the backing store, their
// logs.
type Routine struct {
	CreatedAt time.Time  `json:"created_at"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Details   string     `json:"details"`
	Color     string     `json:"color"`
	BgColor   string     `json:"bg_color"`
	Icon      Icon       `json:"icon"`
	Exercises []Exercise `json:"exercises"`
}

// DetailsSummary derives the details line from the exercise count.
func (r *Routine) DetailsSummary() string {
	return fmt.Sprintf("%d Exercises", len(r.Exercises))
}

// ExerciseByID returns the exercise with the given id, or nil.
func (r *Routine) ExerciseByID(id string) *Exercise {
	for i := range r.Exercises {
		if r.Exercises[i].ID == id {
			return &r.Exercises[i]
		}
	}

	return nil
}

// TotalSets sums the target set counts across all exercises.
func (r *Routine) TotalSets() int {
	var total int

	for i := range r.Exercises {
		total += r.Exercises[i].TargetSets()
	}

	return total
}

// WorkoutLog records one completed set. Logs reference exercises by id
// only; they are cascade-deleted with their parent exercise by the
// backing store, never by the client.
type WorkoutLog struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	RoutineID  string    `json:"routine_id"`
	ExerciseID string    `json:"exercise_id"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	SetNumber  int       `json:"set_number"`
}

// Volume is the work performed in this set.
func (l *WorkoutLog) Volume() float64 {
	return l.Weight * float64(l.Reps)
}
