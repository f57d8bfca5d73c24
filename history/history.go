// Package history lists previously logged sets and supports amending
// or deleting individual entries.
package history

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/apperr"
	"github.com/ayoisaiah/rep/internal/config"
	"github.com/ayoisaiah/rep/internal/models"
	"github.com/ayoisaiah/rep/internal/ui"
)

var (
	errInvalidInput = &apperr.Error{
		Message: "invalid input: only comma-separated numbers are accepted",
	}

	errNoLogs = &apperr.Error{
		Message: "no sets have been logged for this exercise yet",
	}

	errNoSuchEntry = &apperr.Error{
		Message: "%d is not associated with an entry",
	}
)

const (
	timeFormat12 = "Jan 02, 2006 03:04 PM"
	timeFormat24 = "Jan 02, 2006 15:04"
)

// History reads and amends the set logs of one exercise.
type History struct {
	gw             gateway.Gateway
	Opts           *config.FilterConfig
	Routine        models.Routine
	Exercise       models.Exercise
	TwentyFourHour bool
}

// timeFormat returns the timestamp layout matching the user's clock
// preference.
func (h *History) timeFormat() string {
	if h.TwentyFourHour {
		return timeFormat24
	}

	return timeFormat12
}

// New prepares a history view for the given exercise.
func New(
	gw gateway.Gateway,
	r models.Routine,
	ex models.Exercise,
	opts *config.FilterConfig,
) *History {
	return &History{
		gw:       gw,
		Opts:     opts,
		Routine:  r,
		Exercise: ex,
	}
}

// fetchLogs retrieves the exercise's set logs within the reporting
// period, newest first.
func (h *History) fetchLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog

	err := h.gw.Select(ctx, gateway.TableWorkoutLogs, gateway.Query{
		Filters: []gateway.Filter{
			gateway.Eq("exercise_id", h.Exercise.ID),
		},
		OrderBy:    "created_at",
		Descending: true,
	}, &logs)
	if err != nil {
		return nil, err
	}

	if h.Opts == nil {
		return logs, nil
	}

	filtered := logs[:0]

	for i := range logs {
		if h.Opts.InRange(logs[i].CreatedAt) {
			filtered = append(filtered, logs[i])
		}
	}

	return filtered, nil
}

// printLogs outputs a numbered table of set logs.
func (h *History) printLogs(logs []models.WorkoutLog, w io.Writer) {
	tableBody := make([][]string, len(logs))

	for i := range logs {
		l := &logs[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			l.CreatedAt.Format(h.timeFormat()),
			fmt.Sprintf("%d", l.SetNumber),
			fmt.Sprintf("%.1f", l.Weight),
			fmt.Sprintf("%d", l.Reps),
			fmt.Sprintf("%.1f", l.Volume()),
		}
	}

	tableBody = append([][]string{
		{"#", "DATE", "SET", "WEIGHT", "REPS", "VOLUME"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List displays the logged sets for the exercise.
func (h *History) List(ctx context.Context, w io.Writer) error {
	logs, err := h.fetchLogs(ctx)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Fprintln(w, "No sets have been logged for this exercise yet.")
		return nil
	}

	h.printLogs(logs, w)

	return nil
}

// selectLogs prompts for comma-separated entry numbers and returns
// the matching logs.
func selectLogs(logs []models.WorkoutLog) ([]models.WorkoutLog, error) {
	reader := bufio.NewReader(config.Stdin)

	fmt.Fprint(config.Stdout, "Select the entries and press ENTER: ")

	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}

	input = strings.TrimSpace(input)

	if input == "" {
		return nil, errInvalidInput
	}

	var selected []models.WorkoutLog

	for _, v := range strings.Split(input, ",") {
		num, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, errInvalidInput
		}

		index := num - 1
		if index < 0 || index >= len(logs) {
			return nil, errNoSuchEntry.Fmt(num)
		}

		selected = append(selected, logs[index])
	}

	return selected, nil
}

// Delete removes one or more logged sets selected by the user.
func (h *History) Delete(ctx context.Context) error {
	logs, err := h.fetchLogs(ctx)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		return errNoLogs
	}

	h.printLogs(logs, config.Stdout)

	selected, err := selectLogs(logs)
	if err != nil {
		return err
	}

	for i := range selected {
		err = h.gw.Delete(
			ctx,
			gateway.TableWorkoutLogs,
			gateway.Eq("id", selected[i].ID),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// promptValue reads a replacement value, keeping the current one on
// empty input.
func promptValue(label, current string) (string, error) {
	reader := bufio.NewReader(config.Stdin)

	fmt.Fprintf(config.Stdout, "%s [%s]: ", label, current)

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return current, nil
	}

	return input, nil
}

// Edit amends the weight and reps of a logged set selected by the
// user.
func (h *History) Edit(ctx context.Context) error {
	logs, err := h.fetchLogs(ctx)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		return errNoLogs
	}

	h.printLogs(logs, config.Stdout)

	selected, err := selectLogs(logs)
	if err != nil {
		return err
	}

	for i := range selected {
		l := &selected[i]

		weightStr, err := promptValue(
			"Weight",
			strconv.FormatFloat(l.Weight, 'f', -1, 64),
		)
		if err != nil {
			return err
		}

		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return errInvalidInput
		}

		repsStr, err := promptValue("Reps", strconv.Itoa(l.Reps))
		if err != nil {
			return err
		}

		reps, err := strconv.Atoi(repsStr)
		if err != nil {
			return errInvalidInput
		}

		err = h.gw.Update(ctx, gateway.TableWorkoutLogs, map[string]any{
			"weight": weight,
			"reps":   reps,
		}, gateway.Eq("id", l.ID))
		if err != nil {
			return err
		}
	}

	return nil
}

// Records displays the personal bests for the exercise.
func (h *History) Records(ctx context.Context, w io.Writer) error {
	logs, err := h.fetchLogs(ctx)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Fprintln(w, "No sets have been logged for this exercise yet.")
		return nil
	}

	var (
		bestWeight models.WorkoutLog
		bestVolume models.WorkoutLog
	)

	for i := range logs {
		l := logs[i]

		if l.Weight > bestWeight.Weight {
			bestWeight = l
		}

		if l.Volume() > bestVolume.Volume() {
			bestVolume = l
		}
	}

	fmt.Fprintf(
		w,
		"%s\nHeaviest set: %s x %d on %s\nBest set volume: %s on %s\n",
		ui.Blue(h.Exercise.Name),
		ui.Green(fmt.Sprintf("%.1f", bestWeight.Weight)),
		bestWeight.Reps,
		bestWeight.CreatedAt.Format(h.timeFormat()),
		ui.Green(fmt.Sprintf("%.1f", bestVolume.Volume())),
		bestVolume.CreatedAt.Format(h.timeFormat()),
	)

	return nil
}
