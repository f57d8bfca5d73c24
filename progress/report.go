package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/config"
	"github.com/ayoisaiah/rep/internal/models"
	"github.com/ayoisaiah/rep/internal/timeutil"
	"github.com/ayoisaiah/rep/internal/ui"
)

const barChartChar = "▇"

// Report renders the training history of one exercise.
type Report struct {
	gw       gateway.Gateway
	Opts     *config.FilterConfig
	Routine  models.Routine
	Exercise models.Exercise
}

// NewReport prepares a progress report for the given exercise.
func NewReport(
	gw gateway.Gateway,
	r models.Routine,
	ex models.Exercise,
	opts *config.FilterConfig,
) *Report {
	return &Report{
		gw:       gw,
		Opts:     opts,
		Routine:  r,
		Exercise: ex,
	}
}

// fetchLogs retrieves the exercise's set logs within the reporting
// period, oldest first.
func (r *Report) fetchLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog

	err := r.gw.Select(ctx, gateway.TableWorkoutLogs, gateway.Query{
		Filters: []gateway.Filter{
			gateway.Eq("exercise_id", r.Exercise.ID),
		},
		OrderBy: "created_at",
	}, &logs)
	if err != nil {
		return nil, err
	}

	if r.Opts == nil {
		return logs, nil
	}

	filtered := logs[:0]

	for i := range logs {
		if r.Opts.InRange(logs[i].CreatedAt) {
			filtered = append(filtered, logs[i])
		}
	}

	return filtered, nil
}

func getBarChart(points []VolumePoint) string {
	var bars pterm.Bars

	for _, p := range points {
		label := p.Date

		date, err := time.Parse("2006-01-02", p.Date)
		if err == nil {
			label = date.Format("Jan 02, 2006")
		}

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(p.Volume),
			Label: label,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return chart
}

func getSummary(points []VolumePoint) string {
	latest := points[len(points)-1]
	change := LatestPercentChange(points)

	trend := ui.Trend(change, fmt.Sprintf("%+.1f%%", change))

	return fmt.Sprintf(
		"Latest: %s on %s (%s)\nBest day: %s\n",
		ui.Green(fmt.Sprintf("%.1f", latest.Volume)),
		latest.Date,
		trend,
		ui.Highlight(fmt.Sprintf("%.1f", MaxVolume(points))),
	)
}

// Show writes the progress report for the exercise.
func (r *Report) Show(ctx context.Context, w io.Writer) error {
	logs, err := r.fetchLogs(ctx)
	if err != nil {
		return err
	}

	points := GroupVolumeByDate(logs)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s / %s", r.Routine.Name, r.Exercise.Name)

	if len(points) == 0 {
		fmt.Fprintln(w, strings.TrimSpace(
			header+"\nNo data registered yet.",
		))

		return nil
	}

	output := fmt.Sprint(
		header,
		getSummary(points),
		getBarChart(points),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))

	return nil
}
