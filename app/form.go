package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/rep/internal/apperr"
	"github.com/ayoisaiah/rep/internal/models"
)

var (
	errNameEmpty = &apperr.Error{
		Message: "a name is required",
	}

	errInvalidSets = &apperr.Error{
		Message: "sets must be a positive whole number",
	}

	errInvalidRepList = &apperr.Error{
		Message: "reps must be comma-separated whole numbers",
	}
)

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNameEmpty
	}

	return nil
}

func validateSets(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errInvalidSets
	}

	return nil
}

func validateReps(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	for _, part := range strings.Split(s, ",") {
		if _, err := strconv.Atoi(strings.TrimSpace(part)); err != nil {
			return errInvalidRepList
		}
	}

	return nil
}

func parseReps(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")

	reps := make([]string, 0, len(parts))
	for _, part := range parts {
		reps = append(reps, strings.TrimSpace(part))
	}

	return reps
}

// exerciseForm prompts for one exercise's name, sets, and rep
// targets. It reports whether the exercise should be kept.
func exerciseForm(ex *models.Exercise, editing bool) (bool, error) {
	sets := ex.Sets
	reps := strings.Join(ex.Reps, ", ")
	keep := true

	fields := []huh.Field{
		huh.NewInput().
			Title("Exercise name").
			Validate(validateName).
			Value(&ex.Name),
		huh.NewInput().
			Title("Sets").
			Validate(validateSets).
			Value(&sets),
		huh.NewInput().
			Title("Target reps").
			Description("One number, or one per set (e.g. 12, 10, 8)").
			Validate(validateReps).
			Value(&reps),
	}

	if editing {
		fields = append(fields, huh.NewConfirm().
			Title("Keep this exercise?").
			Value(&keep),
		)
	}

	err := huh.NewForm(huh.NewGroup(fields...)).Run()
	if err != nil {
		return false, err
	}

	ex.Reps = parseReps(reps)
	ex.SetSets(strings.TrimSpace(sets))

	return keep, nil
}

// routineForm prompts for a routine's details and walks through its
// exercises one at a time.
func routineForm(r *models.Routine) error {
	icon := string(r.Icon)
	if icon == "" {
		icon = string(models.IconDumbbell)
	}

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Routine name").
			Validate(validateName).
			Value(&r.Name),
		huh.NewInput().
			Title("Details").
			Description("Optional summary shown in listings").
			Value(&r.Details),
		huh.NewSelect[string]().
			Title("Icon").
			Options(huh.NewOptions(
				string(models.IconDumbbell),
				string(models.IconPersonStanding),
				string(models.IconHeartPulse),
				string(models.IconBike),
			)...).
			Value(&icon),
		huh.NewInput().
			Title("Colour").
			Description("Optional hex colour (e.g. #04B575)").
			Value(&r.Color),
	)).Run()
	if err != nil {
		return err
	}

	r.Icon = models.ParseIcon(icon)

	var kept []models.Exercise

	for i := range r.Exercises {
		ex := r.Exercises[i]

		keep, err := exerciseForm(&ex, true)
		if err != nil {
			return err
		}

		if keep {
			kept = append(kept, ex)
		}
	}

	for {
		more := true

		prompt := "Add an exercise?"
		if len(kept) > 0 {
			prompt = "Add another exercise?"
		}

		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(prompt).Value(&more),
		)).Run()
		if err != nil {
			return err
		}

		if !more {
			break
		}

		var ex models.Exercise

		_, err = exerciseForm(&ex, false)
		if err != nil {
			return err
		}

		kept = append(kept, ex)
	}

	r.Exercises = kept

	return nil
}

// confirmDelete prompts before a routine and its logs are removed.
func confirmDelete(name string) (bool, error) {
	var ok bool

	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf(
				"Delete %q and all of its logged sets?", name,
			)).
			Value(&ok),
	)).Run()
	if err != nil {
		return false, err
	}

	return ok, nil
}
