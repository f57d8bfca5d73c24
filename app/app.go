// Package app defines the rep command-line interface and connects it
// to the routine store, workout screen, and reporting views.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rep/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the rep app instance.
func Get() *cli.App {
	repApp := &cli.App{
		Name: "rep",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Rep is a workout tracker for the command-line. Define your training
		routines once, then log your sets interactively while resting the
		right amount between them.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a new workout routine",
				UsageText: "rep add [NAME]",
				Action:    addAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit an existing routine and its exercises",
				UsageText: "rep edit <ROUTINE>",
				Action:    editAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a routine along with its logged sets",
				UsageText: "rep delete <ROUTINE>",
				Action:    deleteAction,
				Flags:     []cli.Flag{yesFlag},
			},
			{
				Name:      "show",
				Usage:     "Display the exercises of a routine",
				UsageText: "rep show <ROUTINE>",
				Action:    showAction,
			},
			{
				Name:      "start",
				Usage:     "Start an interactive workout session",
				UsageText: "rep start <ROUTINE>",
				Action:    startAction,
			},
			{
				Name: "history",
				Usage: `
				List the logged sets for an exercise. Defaults to the full
				history`,
				UsageText: "rep history <ROUTINE> <EXERCISE> [OPTIONS]",
				Action:    historyAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					editLogFlag,
					deleteLogFlag,
					recordsFlag,
				},
			},
			{
				Name: "progress",
				Usage: `
				Track your training volume over time with a per-day
				breakdown`,
				UsageText: "rep progress <ROUTINE> <EXERCISE> [OPTIONS]",
				Action:    progressAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			verboseFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return repApp
}
