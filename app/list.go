package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rep/internal/config"
	"github.com/ayoisaiah/rep/internal/models"
	"github.com/ayoisaiah/rep/internal/ui"
)

const noRoutinesMsg = "No routines yet. Run 'rep add' to create one"

// listRoutines prints out a table of routines sorted by name.
func listRoutines(routines []models.Routine) error {
	if len(routines) == 0 {
		pterm.Info.Println(noRoutinesMsg)
		return nil
	}

	sort.SliceStable(routines, func(i, j int) bool {
		return natural.Less(routines[i].Name, routines[j].Name)
	})

	tableBody := make([][]string, len(routines))

	for i := range routines {
		r := routines[i]

		details := r.Details
		if details == "" {
			details = r.DetailsSummary()
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			r.Icon.Glyph() + " " + r.Name,
			details,
			fmt.Sprintf("%d", r.TotalSets()),
			r.CreatedAt.Format("Jan 02, 2006"),
		}
	}

	tableBody = append([][]string{
		{"#", "ROUTINE", "DETAILS", "TOTAL SETS", "CREATED"},
	}, tableBody...)

	ui.PrintTable(tableBody, config.Stdout)

	return nil
}

// showRoutine prints the exercises of a routine.
func showRoutine(r models.Routine) {
	header := r.Icon.Glyph() + " " + r.Name
	if r.Details != "" {
		header += "  " + r.Details
	}

	pterm.Println(ui.Blue(header))

	tableBody := make([][]string, len(r.Exercises))

	for i := range r.Exercises {
		ex := r.Exercises[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			ex.Name,
			ex.Sets,
			strings.TrimSuffix(ex.RepSummary(), " Reps"),
		}
	}

	tableBody = append([][]string{
		{"#", "EXERCISE", "SETS", "REPS"},
	}, tableBody...)

	ui.PrintTable(tableBody, config.Stdout)
}
