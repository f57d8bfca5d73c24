package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"V"},
		Usage:   "Enable debug logging",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Limit to a time period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Limit to sets logged after this date (e.g. '2 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Limit to sets logged before this date",
	}

	editLogFlag = &cli.BoolFlag{
		Name:  "edit",
		Usage: "Amend the weight or reps of logged sets",
	}

	deleteLogFlag = &cli.BoolFlag{
		Name:  "delete",
		Usage: "Delete logged sets",
	}

	recordsFlag = &cli.BoolFlag{
		Name:  "records",
		Usage: "Show the personal bests for the exercise",
	}
)
