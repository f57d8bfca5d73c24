package routine

import (
	"encoding/json"
	"time"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/models"
)

// routineRow mirrors the routines table. Column names follow the
// store's snake_case convention; translation to the in-memory model
// happens here and nowhere else.
type routineRow struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	BgColor   string    `json:"bg_color"`
}

// exerciseRow mirrors the exercises table. The reps column holds a
// JSON-encoded array of target-rep strings.
type exerciseRow struct {
	ID         string `json:"id"`
	RoutineID  string `json:"routine_id"`
	Name       string `json:"name"`
	Sets       string `json:"sets"`
	Reps       string `json:"reps"`
	OrderIndex int    `json:"order_index"`
}

// encodeReps serialises rep targets for the reps column.
func encodeReps(reps []string) string {
	if reps == nil {
		reps = []string{}
	}

	b, _ := json.Marshal(reps)

	return string(b)
}

// decodeReps parses the reps column, failing loudly on malformed data.
func decodeReps(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}

	var reps []string

	if err := json.Unmarshal([]byte(s), &reps); err != nil {
		return nil, &gateway.DecodeError{
			Table: gateway.TableExercises,
			Err:   err,
		}
	}

	return reps, nil
}

func rowFromRoutine(r *models.Routine) routineRow {
	return routineRow{
		ID:        r.ID,
		Name:      r.Name,
		Details:   r.Details,
		Icon:      string(r.Icon),
		Color:     r.Color,
		BgColor:   r.BgColor,
		CreatedAt: r.CreatedAt,
	}
}

func rowFromExercise(
	e *models.Exercise,
	routineID string,
	orderIndex int,
) exerciseRow {
	return exerciseRow{
		ID:         e.ID,
		RoutineID:  routineID,
		Name:       e.Name,
		Sets:       e.Sets,
		Reps:       encodeReps(e.Reps),
		OrderIndex: orderIndex,
	}
}

func routineFromRow(row routineRow, exercises []models.Exercise) models.Routine {
	if exercises == nil {
		exercises = []models.Exercise{}
	}

	return models.Routine{
		ID:        row.ID,
		Name:      row.Name,
		Details:   row.Details,
		Icon:      models.ParseIcon(row.Icon),
		Color:     row.Color,
		BgColor:   row.BgColor,
		CreatedAt: row.CreatedAt,
		Exercises: exercises,
	}
}

func exerciseFromRow(row exerciseRow) (models.Exercise, error) {
	reps, err := decodeReps(row.Reps)
	if err != nil {
		return models.Exercise{}, err
	}

	return models.Exercise{
		ID:   row.ID,
		Name: row.Name,
		Sets: row.Sets,
		Reps: reps,
	}, nil
}
